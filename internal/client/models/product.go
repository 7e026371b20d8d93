package models

type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title,omitempty"`
	Name     string    `json:"name,omitempty"`
	Price    Amount    `json:"price"`
	Category *Category `json:"category,omitempty"`
	Images   []string  `json:"images,omitempty"`
}

// DisplayName prefers title over name.
func (p Product) DisplayName() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// NewsItem covers both news and promotions, which share a shape.
type NewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	IsActive bool   `json:"isActive"`
}

// CreateOrderRequest is the body of POST /orders/from-cart.
type CreateOrderRequest struct {
	CartID string `json:"cartId"`
}
