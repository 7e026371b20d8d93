package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gownshop/internal/client/checkout"
)

// Checkout collects the delivery details, validates them and prints the
// WhatsApp link that sends the order to the shop.
func (a *App) Checkout(ctx context.Context) error {
	cart, err := a.cartService.Get(ctx)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
		return nil
	}

	var c checkout.Customer

	if c.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}

	prefill := checkout.PrefillPhone(a.authService.MobileNumber(ctx), cart)
	if c.Phone, err = textWithDefault(a.reader, "Enter phone", prefill, a.out); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Cities:")
	for _, city := range checkout.Cities {
		fmt.Fprintf(a.out, "  %-10s %s (delivery ₪ %.0f)\n", city.Code, city.Label(a.locale), city.DeliveryCost)
	}
	if c.City, err = getSimpleText(a.reader, "Enter city code", a.out); err != nil {
		return err
	}
	if c.Address, err = getSimpleText(a.reader, "Enter address", a.out); err != nil {
		return err
	}
	if c.Notes, err = getMultiline(a.reader, "Notes (optional)", a.out); err != nil {
		return err
	}

	order := checkout.Order{
		Customer: c,
		Cart:     cart,
		CartLink: checkout.CartLink(a.config.ShopURL, cart.ID),
	}
	if err := order.Validate(); err != nil {
		return err
	}

	msg := checkout.Message(order, a.locale)
	fmt.Fprintln(a.out, msg)
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Grand total: ₪ %.2f\n", order.GrandTotal())
	fmt.Fprintln(a.out, "Open this link to send the order:")
	fmt.Fprintln(a.out, checkout.WhatsAppLink(a.config.WhatsAppPhone, msg))

	a.logger.Info(ctx, "checkout link created", "cart_id", cart.ID, "items", len(cart.Items), "city", c.City)
	return nil
}
