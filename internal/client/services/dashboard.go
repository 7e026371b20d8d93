package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
)

// DashboardService wraps the admin reporting endpoints. The payloads change
// with the backend, so they stay raw.
type DashboardService interface {
	Stats(ctx context.Context) (json.RawMessage, error)
	Overview(ctx context.Context) (json.RawMessage, error)
	ProductsByCategory(ctx context.Context) (json.RawMessage, error)
	RecentActivity(ctx context.Context) (json.RawMessage, error)
	CartStatistics(ctx context.Context) (json.RawMessage, error)
	Users(ctx context.Context) (json.RawMessage, error)
}

type dashboardService struct {
	client client.Client
}

func NewDashboardService(client client.Client) DashboardService {
	return &dashboardService{client: client}
}

func (s *dashboardService) Stats(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/dashboard/stats")
}

func (s *dashboardService) Overview(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/dashboard/overview")
}

func (s *dashboardService) ProductsByCategory(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/dashboard/products/by-category")
}

func (s *dashboardService) RecentActivity(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/dashboard/recent-activity")
}

func (s *dashboardService) CartStatistics(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/dashboard/cart-statistics")
}

func (s *dashboardService) Users(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/users")
}
