package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
)

type AppConfigService interface {
	AboutUs(ctx context.Context) (json.RawMessage, error)
	UpdateAboutUs(ctx context.Context, body any) (json.RawMessage, error)
	Config(ctx context.Context) (json.RawMessage, error)
}

type appConfigService struct {
	client client.Client
}

func NewAppConfigService(client client.Client) AppConfigService {
	return &appConfigService{client: client}
}

func (s *appConfigService) AboutUs(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/app-config/about-us")
}

func (s *appConfigService) UpdateAboutUs(ctx context.Context, body any) (json.RawMessage, error) {
	return s.client.Patch(ctx, "/app-config/about-us", body)
}

func (s *appConfigService) Config(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/app-config")
}
