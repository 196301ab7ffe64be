package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-backoffice/internal/model"
)

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

func (r *PersonRepository) List(ctx context.Context, q model.ListQuery) ([]model.Person, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, tax_id, email, phone, address, type, notes, created_at, updated_at,
		        COUNT(*) OVER() AS total_count
		 FROM people
		 WHERE active = true
		 ORDER BY name LIMIT $1 OFFSET $2`, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	people := make([]model.Person, 0)
	total := 0
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(
			&p.ID, &p.Name, &p.TaxID, &p.Email, &p.Phone, &p.Address, &p.Type, &p.Notes,
			&p.CreatedAt, &p.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, p)
	}
	return people, total, rows.Err()
}

func (r *PersonRepository) Create(ctx context.Context, p model.Person) (model.Person, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO people (id, name, tax_id, email, phone, address, type, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Name, p.TaxID, p.Email, p.Phone, p.Address, p.Type, p.Notes, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return model.Person{}, fmt.Errorf("insert person: %w", err)
	}
	return p, nil
}
