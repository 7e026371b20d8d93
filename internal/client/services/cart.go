package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

// CartService works on the signed-in user's cart. ListAll and GetByID are
// admin endpoints.
type CartService interface {
	Get(ctx context.Context) (*models.Cart, error)
	AddItem(ctx context.Context, req models.AddCartItemRequest) (json.RawMessage, error)
	UpdateItem(ctx context.Context, itemID string, req models.UpdateCartItemRequest) (json.RawMessage, error)
	RemoveItem(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
	ListAll(ctx context.Context) ([]models.Cart, error)
	GetByID(ctx context.Context, cartID string) (*models.Cart, error)
}

type cartService struct {
	client client.Client
}

func NewCartService(client client.Client) CartService {
	return &cartService{client: client}
}

func (s *cartService) Get(ctx context.Context) (*models.Cart, error) {
	return s.getCart(ctx, "/cart")
}

func (s *cartService) AddItem(ctx context.Context, req models.AddCartItemRequest) (json.RawMessage, error) {
	return s.client.Post(ctx, "/cart/items", req)
}

func (s *cartService) UpdateItem(ctx context.Context, itemID string, req models.UpdateCartItemRequest) (json.RawMessage, error) {
	return s.client.Patch(ctx, resourcePath("/cart/items", itemID), req)
}

func (s *cartService) RemoveItem(ctx context.Context, itemID string) error {
	_, err := s.client.Delete(ctx, resourcePath("/cart/items", itemID))
	return err
}

func (s *cartService) Clear(ctx context.Context) error {
	_, err := s.client.Delete(ctx, "/cart/clear")
	return err
}

func (s *cartService) ListAll(ctx context.Context) ([]models.Cart, error) {
	raw, err := s.client.Get(ctx, "/cart/admin/all")
	if err != nil {
		return nil, err
	}
	return decode[[]models.Cart](raw)
}

func (s *cartService) GetByID(ctx context.Context, cartID string) (*models.Cart, error) {
	return s.getCart(ctx, resourcePath("/cart/admin", cartID))
}

func (s *cartService) getCart(ctx context.Context, path string) (*models.Cart, error) {
	raw, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	c, err := decode[models.Cart](raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
