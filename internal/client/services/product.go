package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

// ProductService reads the public catalogue and, for admins, edits it.
// Create and Update send multipart forms so images travel with the fields.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, form *client.MultipartForm) (json.RawMessage, error)
	Update(ctx context.Context, id string, form *client.MultipartForm) (json.RawMessage, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	client client.Client
}

func NewProductService(client client.Client) ProductService {
	return &productService{client: client}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	raw, err := s.client.Get(ctx, "/products")
	if err != nil {
		return nil, err
	}
	return decode[[]models.Product](raw)
}

func (s *productService) Get(ctx context.Context, id string) (*models.Product, error) {
	raw, err := s.client.Get(ctx, resourcePath("/products", id))
	if err != nil {
		return nil, err
	}
	p, err := decode[models.Product](raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *productService) Create(ctx context.Context, form *client.MultipartForm) (json.RawMessage, error) {
	return s.client.Upload(ctx, http.MethodPost, "/products", form)
}

func (s *productService) Update(ctx context.Context, id string, form *client.MultipartForm) (json.RawMessage, error) {
	return s.client.Upload(ctx, http.MethodPatch, resourcePath("/products", id), form)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, resourcePath("/products", id))
	return err
}
