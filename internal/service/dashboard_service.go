package service

import (
	"context"

	"property-backoffice/internal/model"
)

type DashboardStore interface {
	Stats(ctx context.Context) (model.DashboardStats, error)
}

type RecentPropertyStore interface {
	ListRecent(ctx context.Context, limit int) ([]model.Property, error)
}

type DashboardService struct {
	store       DashboardStore
	properties  RecentPropertyStore
	recentLimit int
}

func NewDashboardService(store DashboardStore, properties RecentPropertyStore, recentLimit int) *DashboardService {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &DashboardService{store: store, properties: properties, recentLimit: recentLimit}
}

func (s *DashboardService) Stats(ctx context.Context) (model.DashboardStats, error) {
	return s.store.Stats(ctx)
}

func (s *DashboardService) RecentProperties(ctx context.Context) ([]model.Property, error) {
	return s.properties.ListRecent(ctx, s.recentLimit)
}
