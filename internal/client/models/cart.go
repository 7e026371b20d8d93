package models

// Cart is the subset of GET /cart (and /cart/admin/{id}) the client reads.
type Cart struct {
	ID    string     `json:"id"`
	Phone string     `json:"phone,omitempty"`
	User  *CartUser  `json:"user,omitempty"`
	Items []CartItem `json:"items"`
}

type CartUser struct {
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

type CartItem struct {
	ID       string   `json:"id"`
	Product  *Product `json:"product,omitempty"`
	Size     string   `json:"size,omitempty"`
	Color    string   `json:"color,omitempty"`
	Quantity Amount   `json:"quantity"`
	Price    Amount   `json:"price"`
}

// Subtotal is price times quantity.
func (i CartItem) Subtotal() float64 {
	return float64(i.Price) * float64(i.Quantity)
}

// ProductName prefers title over name; both are empty for a deleted product.
func (i CartItem) ProductName() string {
	if i.Product == nil {
		return ""
	}
	if i.Product.Title != "" {
		return i.Product.Title
	}
	return i.Product.Name
}

// CategoryName is the item's product category, if the API expanded it.
func (i CartItem) CategoryName() string {
	if i.Product == nil || i.Product.Category == nil {
		return ""
	}
	return i.Product.Category.Name
}

// AddCartItemRequest is the body of POST /cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// UpdateCartItemRequest is the body of PATCH /cart/items/{id}.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
