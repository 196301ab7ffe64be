package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"property-backoffice/internal/model"
)

const invoiceColumns = `id, lease_id, number, period, due_date, total_value,
	status, payment_date, created_by, updated_by, created_at, updated_at`

type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

func (r *InvoiceRepository) List(ctx context.Context, q model.ListQuery) ([]model.Invoice, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT f.id, f.lease_id, f.number, f.period, f.due_date, f.total_value,
		        f.status, f.payment_date, f.created_by, f.updated_by, f.created_at, f.updated_at,
		        COALESCE(l.code, ''), COALESCE(p.name, ''),
		        COUNT(*) OVER() AS total_count
		 FROM invoices f
		 LEFT JOIN leases l ON f.lease_id = l.id
		 LEFT JOIN properties p ON l.property_id = p.id
		 WHERE f.active = true
		 ORDER BY f.due_date DESC LIMIT $1 OFFSET $2`, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]model.Invoice, 0)
	total := 0
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.LeaseID, &inv.Number, &inv.Period, &inv.DueDate, &inv.TotalValue,
			&inv.Status, &inv.PaymentDate, &inv.CreatedBy, &inv.UpdatedBy, &inv.CreatedAt, &inv.UpdatedAt,
			&inv.LeaseCode, &inv.PropertyName, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, rows.Err()
}

func (r *InvoiceRepository) Create(ctx context.Context, inv model.Invoice) (model.Invoice, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO invoices (
			id, lease_id, number, period, due_date, total_value,
			status, payment_date, created_by, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		inv.ID, inv.LeaseID, inv.Number, inv.Period, inv.DueDate, inv.TotalValue,
		inv.Status, inv.PaymentDate, inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("insert invoice: %w", err)
	}
	return inv, nil
}

// UpdateStatus transitions an invoice, stamping payment date and actor.
// The row is locked first so a concurrent second settlement observes
// the committed status: settling an already-paid invoice reports
// model.ErrInvoiceAlreadySettled instead of overwriting the payment
// date.
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id string, status string, paymentDate *time.Time, actorID string) (model.Invoice, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("begin invoice update: %w", err)
	}
	defer tx.Rollback(ctx)

	var current string
	err = tx.QueryRow(ctx,
		`SELECT status FROM invoices WHERE id = $1 AND active = true FOR UPDATE`, id).
		Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Invoice{}, model.ErrInvoiceNotFound
	}
	if err != nil {
		return model.Invoice{}, fmt.Errorf("lock invoice: %w", err)
	}

	if current == model.InvoiceStatusPaid && status == model.InvoiceStatusPaid {
		return model.Invoice{}, model.ErrInvoiceAlreadySettled
	}

	var inv model.Invoice
	err = tx.QueryRow(ctx,
		`UPDATE invoices
		 SET status = $2, payment_date = $3, updated_by = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+invoiceColumns,
		id, status, paymentDate, actorID).
		Scan(
			&inv.ID, &inv.LeaseID, &inv.Number, &inv.Period, &inv.DueDate, &inv.TotalValue,
			&inv.Status, &inv.PaymentDate, &inv.CreatedBy, &inv.UpdatedBy, &inv.CreatedAt, &inv.UpdatedAt,
		)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("update invoice: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Invoice{}, fmt.Errorf("commit invoice update: %w", err)
	}
	return inv, nil
}
