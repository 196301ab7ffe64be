package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-backoffice/internal/model"
)

const propertyColumns = `id, code, name, type, purpose, availability,
	city, state, zip_code, neighborhood, street, number, complement,
	bedrooms, bathrooms, parking_spaces, built_area, rent_value, sale_value,
	notes, created_by, created_at, updated_at`

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) List(ctx context.Context, q model.ListQuery) ([]model.Property, int, error) {
	sql := `SELECT ` + propertyColumns + `, COUNT(*) OVER() AS total_count
		 FROM properties WHERE active = true`
	args := []any{}

	if q.Search != "" {
		sql += ` AND (name ILIKE $1 OR code ILIKE $1 OR street ILIKE $1)`
		args = append(args, "%"+q.Search+"%")
	}

	sql += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]model.Property, 0)
	total := 0
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.Type, &p.Purpose, &p.Availability,
			&p.City, &p.State, &p.ZipCode, &p.Neighborhood, &p.Street, &p.Number, &p.Complement,
			&p.Bedrooms, &p.Bathrooms, &p.ParkingSpaces, &p.BuiltArea, &p.RentValue, &p.SaleValue,
			&p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, total, rows.Err()
}

// Create allocates the next IMV code and inserts the row in one
// transaction so concurrent creations cannot claim the same code.
func (r *PropertyRepository) Create(ctx context.Context, p model.Property) (model.Property, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Property{}, fmt.Errorf("begin property create: %w", err)
	}
	defer tx.Rollback(ctx)

	p.Code = NextCode(ctx, tx, "properties", "code", "IMV")

	_, err = tx.Exec(ctx,
		`INSERT INTO properties (
			id, code, name, type, purpose, availability,
			city, state, zip_code, neighborhood, street, number, complement,
			bedrooms, bathrooms, parking_spaces, built_area, rent_value, sale_value,
			notes, created_by, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		p.ID, p.Code, p.Name, p.Type, p.Purpose, p.Availability,
		p.City, p.State, p.ZipCode, p.Neighborhood, p.Street, p.Number, p.Complement,
		p.Bedrooms, p.Bathrooms, p.ParkingSpaces, p.BuiltArea, p.RentValue, p.SaleValue,
		p.Notes, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return model.Property{}, fmt.Errorf("insert property: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Property{}, fmt.Errorf("commit property create: %w", err)
	}
	return p, nil
}

func (r *PropertyRepository) ListAvailable(ctx context.Context) ([]model.PropertyOption, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, name, street, number, city
		 FROM properties
		 WHERE active = true AND availability = $1
		 ORDER BY name`, model.AvailabilityAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available properties: %w", err)
	}
	defer rows.Close()

	options := make([]model.PropertyOption, 0)
	for rows.Next() {
		var o model.PropertyOption
		if err := rows.Scan(&o.ID, &o.Code, &o.Name, &o.Street, &o.Number, &o.City); err != nil {
			return nil, fmt.Errorf("scan property option: %w", err)
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

func (r *PropertyRepository) ListRecent(ctx context.Context, limit int) ([]model.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+propertyColumns+`
		 FROM properties WHERE active = true
		 ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent properties: %w", err)
	}
	defer rows.Close()

	properties := make([]model.Property, 0)
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.Type, &p.Purpose, &p.Availability,
			&p.City, &p.State, &p.ZipCode, &p.Neighborhood, &p.Street, &p.Number, &p.Complement,
			&p.Bedrooms, &p.Bathrooms, &p.ParkingSpaces, &p.BuiltArea, &p.RentValue, &p.SaleValue,
			&p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recent property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
