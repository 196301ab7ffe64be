package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-backoffice/internal/model"
)

type LeaseRepository struct {
	pool *pgxpool.Pool
}

func NewLeaseRepository(pool *pgxpool.Pool) *LeaseRepository {
	return &LeaseRepository{pool: pool}
}

func (r *LeaseRepository) List(ctx context.Context, q model.ListQuery) ([]model.Lease, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT l.id, l.code, l.property_id, l.start_date, l.duration_months,
		        l.rent_value, l.due_day, l.status, l.created_by, l.created_at, l.updated_at,
		        p.code, p.name,
		        COUNT(*) OVER() AS total_count
		 FROM leases l
		 JOIN properties p ON l.property_id = p.id
		 WHERE l.active = true
		 ORDER BY l.created_at DESC LIMIT $1 OFFSET $2`, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list leases: %w", err)
	}
	defer rows.Close()

	leases := make([]model.Lease, 0)
	total := 0
	for rows.Next() {
		var l model.Lease
		if err := rows.Scan(
			&l.ID, &l.Code, &l.PropertyID, &l.StartDate, &l.DurationMonths,
			&l.RentValue, &l.DueDay, &l.Status, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
			&l.PropertyCode, &l.PropertyName, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan lease: %w", err)
		}
		leases = append(leases, l)
	}
	return leases, total, rows.Err()
}

// Create runs the lease-creation workflow as one transaction: mark the
// referenced property leased, allocate the next CONT code, insert the
// lease row. If any step fails nothing persists. A missing or inactive
// property surfaces as model.ErrPropertyNotFound, not a generic failure.
//
// The property update runs first so the row lock it takes also
// serializes two concurrent leases against the same property.
func (r *LeaseRepository) Create(ctx context.Context, l model.Lease) (model.Lease, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Lease{}, fmt.Errorf("begin lease create: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE properties SET availability = $2, updated_at = now()
		 WHERE id = $1 AND active = true`,
		l.PropertyID, model.AvailabilityLeased)
	if err != nil {
		return model.Lease{}, fmt.Errorf("mark property leased: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Lease{}, model.ErrPropertyNotFound
	}

	l.Code = NextCode(ctx, tx, "leases", "code", "CONT")

	_, err = tx.Exec(ctx,
		`INSERT INTO leases (
			id, code, property_id, start_date, duration_months,
			rent_value, due_day, status, created_by, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.Code, l.PropertyID, l.StartDate, l.DurationMonths,
		l.RentValue, l.DueDay, l.Status, l.CreatedBy, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return model.Lease{}, fmt.Errorf("insert lease: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Lease{}, fmt.Errorf("commit lease create: %w", err)
	}
	return l, nil
}
