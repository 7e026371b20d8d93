package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

// BulletinService serves the two resources that share the bulletin shape:
// news (/news) and promotions (/promotions).
type BulletinService interface {
	Active(ctx context.Context) ([]models.NewsItem, error)
	List(ctx context.Context, includeInactive bool) ([]models.NewsItem, error)
	Get(ctx context.Context, id string) (*models.NewsItem, error)
	Create(ctx context.Context, body any) (json.RawMessage, error)
	Update(ctx context.Context, id string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (json.RawMessage, error)
}

type bulletinService struct {
	client client.Client
	base   string
}

func NewNewsService(client client.Client) BulletinService {
	return &bulletinService{client: client, base: "/news"}
}

func NewPromotionService(client client.Client) BulletinService {
	return &bulletinService{client: client, base: "/promotions"}
}

func (s *bulletinService) Active(ctx context.Context) ([]models.NewsItem, error) {
	return s.list(ctx, s.base+"/active")
}

func (s *bulletinService) List(ctx context.Context, includeInactive bool) ([]models.NewsItem, error) {
	return s.list(ctx, s.base+"?includeInactive="+strconv.FormatBool(includeInactive))
}

func (s *bulletinService) Get(ctx context.Context, id string) (*models.NewsItem, error) {
	raw, err := s.client.Get(ctx, resourcePath(s.base, id))
	if err != nil {
		return nil, err
	}
	item, err := decode[models.NewsItem](raw)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *bulletinService) Create(ctx context.Context, body any) (json.RawMessage, error) {
	return s.client.Post(ctx, s.base, body)
}

func (s *bulletinService) Update(ctx context.Context, id string, body any) (json.RawMessage, error) {
	return s.client.Patch(ctx, resourcePath(s.base, id), body)
}

func (s *bulletinService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, resourcePath(s.base, id))
	return err
}

func (s *bulletinService) ToggleActive(ctx context.Context, id string) (json.RawMessage, error) {
	return s.client.Patch(ctx, resourcePath(s.base, id)+"/toggle-active", struct{}{})
}

func (s *bulletinService) list(ctx context.Context, path string) ([]models.NewsItem, error) {
	raw, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decode[[]models.NewsItem](raw)
}
