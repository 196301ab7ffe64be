package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"property-backoffice/internal/event"
	"property-backoffice/internal/model"
	"property-backoffice/pkg/apierror"
)

type PersonStore interface {
	List(ctx context.Context, q model.ListQuery) ([]model.Person, int, error)
	Create(ctx context.Context, p model.Person) (model.Person, error)
}

type PersonService struct {
	store PersonStore
	bus   event.Bus
}

func NewPersonService(store PersonStore, bus event.Bus) *PersonService {
	return &PersonService{store: store, bus: bus}
}

func (s *PersonService) List(ctx context.Context, q model.ListQuery) ([]model.Person, int, error) {
	return s.store.List(ctx, normalizeQuery(q))
}

func (s *PersonService) Create(ctx context.Context, req model.CreatePersonRequest, actor model.AuthUser) (model.Person, error) {
	if req.Name == "" {
		return model.Person{}, apierror.Validation("name is required", "name")
	}
	if req.Type == "" {
		req.Type = model.PersonTypeOther
	}
	if !model.ValidPersonType(req.Type) {
		return model.Person{}, apierror.Validation("unknown person type", "type")
	}

	now := time.Now().UTC()
	person := model.Person{
		ID:        uuid.NewString(),
		Name:      req.Name,
		TaxID:     req.TaxID,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Type:      req.Type,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.store.Create(ctx, person)
	if err != nil {
		return model.Person{}, err
	}

	if s.bus != nil {
		s.bus.Publish(event.Event{
			ID:         uuid.NewString(),
			Type:       event.TypePersonCreated,
			Resource:   created.Name,
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Timestamp:  now.Format(time.RFC3339),
		})
	}

	return created, nil
}
