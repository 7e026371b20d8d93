package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, c models.Category) (json.RawMessage, error)
	Update(ctx context.Context, id string, c models.Category) (json.RawMessage, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	client client.Client
}

func NewCategoryService(client client.Client) CategoryService {
	return &categoryService{client: client}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	raw, err := s.client.Get(ctx, "/categories")
	if err != nil {
		return nil, err
	}
	return decode[[]models.Category](raw)
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	raw, err := s.client.Get(ctx, resourcePath("/categories", id))
	if err != nil {
		return nil, err
	}
	c, err := decode[models.Category](raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *categoryService) Create(ctx context.Context, c models.Category) (json.RawMessage, error) {
	return s.client.Post(ctx, "/categories", models.Category{Name: c.Name})
}

func (s *categoryService) Update(ctx context.Context, id string, c models.Category) (json.RawMessage, error) {
	return s.client.Patch(ctx, resourcePath("/categories", id), models.Category{Name: c.Name})
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, resourcePath("/categories", id))
	return err
}
