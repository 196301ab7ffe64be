package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"property-backoffice/internal/event"
	"property-backoffice/internal/model"
	"property-backoffice/pkg/apierror"
)

type PropertyStore interface {
	List(ctx context.Context, q model.ListQuery) ([]model.Property, int, error)
	Create(ctx context.Context, p model.Property) (model.Property, error)
	ListAvailable(ctx context.Context) ([]model.PropertyOption, error)
	ListRecent(ctx context.Context, limit int) ([]model.Property, error)
}

type PropertyService struct {
	store PropertyStore
	bus   event.Bus
}

func NewPropertyService(store PropertyStore, bus event.Bus) *PropertyService {
	return &PropertyService{store: store, bus: bus}
}

func (s *PropertyService) List(ctx context.Context, q model.ListQuery) ([]model.Property, int, error) {
	return s.store.List(ctx, normalizeQuery(q))
}

func (s *PropertyService) Create(ctx context.Context, req model.CreatePropertyRequest, actor model.AuthUser) (model.Property, error) {
	if req.Name == "" {
		return model.Property{}, apierror.Validation("name is required", "name")
	}
	if req.Type == "" {
		return model.Property{}, apierror.Validation("type is required", "type")
	}
	if req.Availability == "" {
		req.Availability = model.AvailabilityAvailable
	}
	if !model.ValidAvailability(req.Availability) {
		return model.Property{}, apierror.Validation("unknown availability", "availability")
	}
	if req.Bedrooms < 0 || req.Bathrooms < 0 || req.ParkingSpaces < 0 {
		return model.Property{}, apierror.Validation("room counts cannot be negative", "bedrooms")
	}
	if req.BuiltArea < 0 || req.RentValue < 0 || req.SaleValue < 0 {
		return model.Property{}, apierror.Validation("values cannot be negative", "rent_value")
	}

	now := time.Now().UTC()
	property := model.Property{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Type:          req.Type,
		Purpose:       req.Purpose,
		Availability:  req.Availability,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Neighborhood:  req.Neighborhood,
		Street:        req.Street,
		Number:        req.Number,
		Complement:    req.Complement,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		ParkingSpaces: req.ParkingSpaces,
		BuiltArea:     req.BuiltArea,
		RentValue:     req.RentValue,
		SaleValue:     req.SaleValue,
		Notes:         req.Notes,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.store.Create(ctx, property)
	if err != nil {
		return model.Property{}, err
	}

	if s.bus != nil {
		s.bus.Publish(event.Event{
			ID:         uuid.NewString(),
			Type:       event.TypePropertyCreated,
			Resource:   created.Code,
			Details:    created.Name,
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Timestamp:  now.Format(time.RFC3339),
		})
	}

	return created, nil
}

func (s *PropertyService) AvailableForSelect(ctx context.Context) ([]model.PropertyOption, error) {
	return s.store.ListAvailable(ctx)
}

// normalizeQuery clamps pagination to sane bounds so a single request
// cannot drag the whole table into memory.
func normalizeQuery(q model.ListQuery) model.ListQuery {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 200 {
		q.Limit = 200
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}
