package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-backoffice/internal/model"
)

type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// Stats runs three independent count queries, one per resource table.
// They are separate statements with no shared snapshot; each reflects
// the table at its own execution time.
func (r *DashboardRepository) Stats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE availability = $1),
		        COUNT(*) FILTER (WHERE availability = $2)
		 FROM properties WHERE active = true`,
		model.AvailabilityAvailable, model.AvailabilityLeased).
		Scan(&stats.Properties.Total, &stats.Properties.Available, &stats.Properties.Leased)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("count properties: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		 FROM leases WHERE active = true`, model.LeaseStatusActive).
		Scan(&stats.Leases.Total, &stats.Leases.Active)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("count leases: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		 FROM invoices WHERE active = true`, model.InvoiceStatusOpen).
		Scan(&stats.Invoices.Total, &stats.Invoices.Pending)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("count invoices: %w", err)
	}

	return stats, nil
}
