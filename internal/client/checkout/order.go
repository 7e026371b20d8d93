package checkout

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNameRequired    = errors.New("name is required")
	ErrPhoneRequired   = errors.New("phone is required")
	ErrCityRequired    = errors.New("city is required")
	ErrUnknownCity     = errors.New("unknown city")
	ErrAddressRequired = errors.New("address is required")
)

type Customer struct {
	Name    string
	Phone   string
	City    string
	Address string
	Notes   string
}

type Order struct {
	Customer Customer
	Cart     *models.Cart
	// CartLink points the shop at the cart; empty omits the line.
	CartLink string
}

// Validate checks the fields in form order and returns the first problem.
func (o Order) Validate() error {
	if o.Cart == nil || len(o.Cart.Items) == 0 {
		return ErrEmptyCart
	}
	c := o.Customer
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrPhoneRequired
	}
	if c.City == "" {
		return ErrCityRequired
	}
	if _, ok := CityByCode(c.City); !ok {
		return ErrUnknownCity
	}
	if strings.TrimSpace(c.Address) == "" {
		return ErrAddressRequired
	}
	return nil
}

// Total sums price times quantity over the cart; missing values count as 0.
func Total(cart *models.Cart) float64 {
	if cart == nil {
		return 0
	}
	var sum float64
	for _, item := range cart.Items {
		sum += item.Subtotal()
	}
	return sum
}

// DeliveryCost is 0 until a known city is chosen.
func (o Order) DeliveryCost() float64 {
	city, ok := CityByCode(o.Customer.City)
	if !ok {
		return 0
	}
	return city.DeliveryCost
}

func (o Order) GrandTotal() float64 {
	return Total(o.Cart) + o.DeliveryCost()
}

// PrefillPhone picks the phone to offer on the checkout form: the number of
// the last mobile login, then the cart owner's mobile number, then the cart
// owner's phone, then the cart's own phone.
func PrefillPhone(storedMobile string, cart *models.Cart) string {
	candidates := []string{storedMobile}
	if cart != nil {
		if cart.User != nil {
			candidates = append(candidates, cart.User.MobileNumber, cart.User.Phone)
		}
		candidates = append(candidates, cart.Phone)
	}
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// CartLink builds the storefront URL of the cart under origin.
func CartLink(origin, cartID string) string {
	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		return ""
	}
	if cartID == "" {
		return origin + "/cart"
	}
	return origin + "/cart?cartId=" + cartID
}
