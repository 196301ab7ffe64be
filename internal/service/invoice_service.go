package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"property-backoffice/internal/event"
	"property-backoffice/internal/model"
	"property-backoffice/pkg/apierror"
)

type InvoiceStore interface {
	List(ctx context.Context, q model.ListQuery) ([]model.Invoice, int, error)
	Create(ctx context.Context, inv model.Invoice) (model.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status string, paymentDate *time.Time, actorID string) (model.Invoice, error)
}

type InvoiceService struct {
	store InvoiceStore
	bus   event.Bus
}

func NewInvoiceService(store InvoiceStore, bus event.Bus) *InvoiceService {
	return &InvoiceService{store: store, bus: bus}
}

func (s *InvoiceService) List(ctx context.Context, q model.ListQuery) ([]model.Invoice, int, error) {
	return s.store.List(ctx, normalizeQuery(q))
}

func (s *InvoiceService) Create(ctx context.Context, req model.CreateInvoiceRequest, actor model.AuthUser) (model.Invoice, error) {
	if req.Number == "" {
		return model.Invoice{}, apierror.Validation("number is required", "number")
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return model.Invoice{}, apierror.Validation("due_date must be YYYY-MM-DD", "due_date")
	}
	if req.TotalValue <= 0 {
		return model.Invoice{}, apierror.Validation("total_value must be positive", "total_value")
	}

	now := time.Now().UTC()
	invoice := model.Invoice{
		ID:         uuid.NewString(),
		LeaseID:    req.LeaseID,
		Number:     req.Number,
		Period:     req.Period,
		DueDate:    dueDate,
		TotalValue: req.TotalValue,
		Status:     model.InvoiceStatusOpen,
		CreatedBy:  actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.store.Create(ctx, invoice)
	if err != nil {
		return model.Invoice{}, err
	}

	if s.bus != nil {
		s.bus.Publish(event.Event{
			ID:         uuid.NewString(),
			Type:       event.TypeInvoiceCreated,
			Resource:   created.Number,
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Timestamp:  now.Format(time.RFC3339),
		})
	}

	return created, nil
}

// Settle transitions an invoice's status. Settling to "pago" requires a
// payment date and stamps the acting user; settling an already-paid
// invoice is rejected so the original payment date is never rewritten.
func (s *InvoiceService) Settle(ctx context.Context, id string, req model.SettleInvoiceRequest, actor model.AuthUser) (model.Invoice, error) {
	if id == "" {
		return model.Invoice{}, apierror.Validation("invoice id is required", "id")
	}
	if !model.ValidInvoiceStatus(req.Status) {
		return model.Invoice{}, apierror.Validation("unknown invoice status", "status")
	}

	var paymentDate *time.Time
	if req.Status == model.InvoiceStatusPaid {
		raw := req.PaymentDate
		if raw == "" {
			return model.Invoice{}, apierror.Validation("payment_date is required to settle", "payment_date")
		}
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return model.Invoice{}, apierror.Validation("payment_date must be YYYY-MM-DD", "payment_date")
		}
		paymentDate = &parsed
	}

	updated, err := s.store.UpdateStatus(ctx, id, req.Status, paymentDate, actor.ID)
	if err != nil {
		return model.Invoice{}, err
	}

	if s.bus != nil && req.Status == model.InvoiceStatusPaid {
		s.bus.Publish(event.Event{
			ID:         uuid.NewString(),
			Type:       event.TypeInvoiceSettled,
			Resource:   updated.Number,
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		})
	}

	return updated, nil
}
