package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"property-backoffice/internal/model"
)

// fakeLeaseStore mimics the repository's transactional behavior:
// creation fails without a trace when the property is unknown, and a
// sequential CONT code is assigned on success.
type fakeLeaseStore struct {
	properties map[string]bool // id -> exists
	leases     []model.Lease
}

func (s *fakeLeaseStore) List(_ context.Context, _ model.ListQuery) ([]model.Lease, int, error) {
	return s.leases, len(s.leases), nil
}

func (s *fakeLeaseStore) Create(_ context.Context, l model.Lease) (model.Lease, error) {
	if !s.properties[l.PropertyID] {
		return model.Lease{}, model.ErrPropertyNotFound
	}
	l.Code = fmt.Sprintf("CONT%03d", len(s.leases)+1)
	s.leases = append(s.leases, l)
	return l, nil
}

func TestLeaseServiceCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	actor := model.AuthUser{ID: "u1", Email: "a@b.com"}

	validRequest := func() model.CreateLeaseRequest {
		return model.CreateLeaseRequest{
			PropertyID:     "p1",
			StartDate:      "2026-09-01",
			DurationMonths: 12,
			RentValue:      1500,
			DueDay:         5,
		}
	}

	t.Run("creates an active lease with the actor stamped", func(t *testing.T) {
		store := &fakeLeaseStore{properties: map[string]bool{"p1": true}}
		svc := NewLeaseService(store, nil)

		lease, err := svc.Create(ctx, validRequest(), actor)
		require.NoError(t, err)
		require.Equal(t, model.LeaseStatusActive, lease.Status)
		require.Equal(t, "CONT001", lease.Code)
		require.Equal(t, "u1", lease.CreatedBy)
		require.Equal(t, "p1", lease.PropertyID)
		require.NotEmpty(t, lease.ID)
	})

	t.Run("unknown property surfaces as not found and leaves nothing behind", func(t *testing.T) {
		store := &fakeLeaseStore{properties: map[string]bool{}}
		svc := NewLeaseService(store, nil)

		req := validRequest()
		req.PropertyID = "missing"
		_, err := svc.Create(ctx, req, actor)
		require.ErrorIs(t, err, model.ErrPropertyNotFound)
		require.Empty(t, store.leases)
	})

	t.Run("rejects invalid input before touching the store", func(t *testing.T) {
		store := &fakeLeaseStore{properties: map[string]bool{"p1": true}}
		svc := NewLeaseService(store, nil)

		cases := []struct {
			name   string
			mutate func(*model.CreateLeaseRequest)
		}{
			{"missing property id", func(r *model.CreateLeaseRequest) { r.PropertyID = "" }},
			{"malformed start date", func(r *model.CreateLeaseRequest) { r.StartDate = "01/09/2026" }},
			{"zero duration", func(r *model.CreateLeaseRequest) { r.DurationMonths = 0 }},
			{"zero rent", func(r *model.CreateLeaseRequest) { r.RentValue = 0 }},
			{"due day out of range", func(r *model.CreateLeaseRequest) { r.DueDay = 32 }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validRequest()
				tc.mutate(&req)
				_, err := svc.Create(ctx, req, actor)
				require.Error(t, err)
				require.Empty(t, store.leases)
			})
		}
	})

	t.Run("codes advance sequentially across creations", func(t *testing.T) {
		store := &fakeLeaseStore{properties: map[string]bool{"p1": true}}
		svc := NewLeaseService(store, nil)

		first, err := svc.Create(ctx, validRequest(), actor)
		require.NoError(t, err)
		second, err := svc.Create(ctx, validRequest(), actor)
		require.NoError(t, err)

		require.Equal(t, "CONT001", first.Code)
		require.Equal(t, "CONT002", second.Code)
	})
}
