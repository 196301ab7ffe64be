package service

import (
	"context"
	"log/slog"
	"time"

	"property-backoffice/internal/event"
	"property-backoffice/internal/model"
)

type AuditStore interface {
	Insert(ctx context.Context, e model.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error)
}

// AuditService records domain events (logins, resource creation,
// settlements) as an audit trail. Recording runs on a background
// goroutine fed by the event bus; an insert failure is logged and
// dropped, it never fails the request that produced the event.
type AuditService struct {
	store AuditStore
}

func NewAuditService(store AuditStore) *AuditService {
	return &AuditService{store: store}
}

// Run consumes bus events until ctx is cancelled. Intended to be
// launched once as a goroutine at startup.
func (s *AuditService) Run(ctx context.Context, bus event.Bus) {
	events, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			s.record(ctx, e)
		}
	}
}

func (s *AuditService) record(ctx context.Context, e event.Event) {
	occurredAt, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		occurredAt = time.Now().UTC()
	}

	entry := model.AuditEntry{
		ID:         e.ID,
		Action:     string(e.Type),
		Resource:   e.Resource,
		ActorID:    e.ActorID,
		ActorEmail: e.ActorEmail,
		Details:    e.Details,
		OccurredAt: occurredAt,
	}

	if err := s.store.Insert(ctx, entry); err != nil {
		slog.Error("audit entry dropped", "action", entry.Action, "error", err)
	}
}

func (s *AuditService) ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.store.ListRecent(ctx, limit)
}
