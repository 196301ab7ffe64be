package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"property-backoffice/internal/event"
	"property-backoffice/internal/model"
	"property-backoffice/pkg/apierror"
)

type LeaseStore interface {
	List(ctx context.Context, q model.ListQuery) ([]model.Lease, int, error)
	// Create must be atomic: lease insert and property availability flip
	// commit together or not at all.
	Create(ctx context.Context, l model.Lease) (model.Lease, error)
}

type LeaseService struct {
	store LeaseStore
	bus   event.Bus
}

func NewLeaseService(store LeaseStore, bus event.Bus) *LeaseService {
	return &LeaseService{store: store, bus: bus}
}

func (s *LeaseService) List(ctx context.Context, q model.ListQuery) ([]model.Lease, int, error) {
	return s.store.List(ctx, normalizeQuery(q))
}

// Create validates the request and runs the lease-creation workflow.
// New leases always start as "ativo"; the linked property comes out the
// other side marked "locado" or the whole operation fails.
func (s *LeaseService) Create(ctx context.Context, req model.CreateLeaseRequest, actor model.AuthUser) (model.Lease, error) {
	if req.PropertyID == "" {
		return model.Lease{}, apierror.Validation("property_id is required", "property_id")
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return model.Lease{}, apierror.Validation("start_date must be YYYY-MM-DD", "start_date")
	}
	if req.DurationMonths <= 0 {
		return model.Lease{}, apierror.Validation("duration_months must be positive", "duration_months")
	}
	if req.RentValue <= 0 {
		return model.Lease{}, apierror.Validation("rent_value must be positive", "rent_value")
	}
	if req.DueDay < 1 || req.DueDay > 31 {
		return model.Lease{}, apierror.Validation("due_day must be between 1 and 31", "due_day")
	}

	now := time.Now().UTC()
	lease := model.Lease{
		ID:             uuid.NewString(),
		PropertyID:     req.PropertyID,
		StartDate:      startDate,
		DurationMonths: req.DurationMonths,
		RentValue:      req.RentValue,
		DueDay:         req.DueDay,
		Status:         model.LeaseStatusActive,
		CreatedBy:      actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.store.Create(ctx, lease)
	if err != nil {
		return model.Lease{}, err
	}

	if s.bus != nil {
		s.bus.Publish(event.Event{
			ID:         uuid.NewString(),
			Type:       event.TypeLeaseCreated,
			Resource:   created.Code,
			Details:    "property " + created.PropertyID,
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Timestamp:  now.Format(time.RFC3339),
		})
	}

	return created, nil
}
