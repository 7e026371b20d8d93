package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

// OrderService is admin only.
type OrderService interface {
	List(ctx context.Context) (json.RawMessage, error)
	Get(ctx context.Context, id string) (json.RawMessage, error)
	CreateFromCart(ctx context.Context, cartID string) (json.RawMessage, error)
}

type orderService struct {
	client client.Client
}

func NewOrderService(client client.Client) OrderService {
	return &orderService{client: client}
}

func (s *orderService) List(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/orders")
}

func (s *orderService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.client.Get(ctx, resourcePath("/orders", id))
}

func (s *orderService) CreateFromCart(ctx context.Context, cartID string) (json.RawMessage, error) {
	return s.client.Post(ctx, "/orders/from-cart", models.CreateOrderRequest{CartID: cartID})
}
