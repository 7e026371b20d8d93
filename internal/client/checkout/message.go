package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

type labels struct {
	greeting, customer, name, phone, city, address, notes string

	products, unnamed, category, size, color, quantity string

	price, subtotal, productsTotal, delivery, grandTotal string

	cartLink, thanks string
}

var messageLabels = map[client.Locale]labels{
	client.LocaleArabic: {
		greeting:      "مرحباً، أرغب في تقديم طلب جديد:",
		customer:      "معلومات العميل:",
		name:          "الاسم",
		phone:         "رقم الهاتف",
		city:          "المدينة",
		address:       "العنوان",
		notes:         "ملاحظات",
		products:      "المنتجات:",
		unnamed:       "منتج",
		category:      "الفئة",
		size:          "المقاس",
		color:         "اللون",
		quantity:      "الكمية",
		price:         "السعر",
		subtotal:      "المجموع",
		productsTotal: "إجمالي المنتجات",
		delivery:      "تكلفة التوصيل",
		grandTotal:    "الإجمالي الكلي",
		cartLink:      "رابط السلة",
		thanks:        "شكراً لكم",
	},
	client.LocaleEnglish: {
		greeting:      "Hello, I would like to place a new order:",
		customer:      "Customer details:",
		name:          "Name",
		phone:         "Phone",
		city:          "City",
		address:       "Address",
		notes:         "Notes",
		products:      "Products:",
		unnamed:       "Product",
		category:      "Category",
		size:          "Size",
		color:         "Color",
		quantity:      "Quantity",
		price:         "Price",
		subtotal:      "Subtotal",
		productsTotal: "Products total",
		delivery:      "Delivery",
		grandTotal:    "Grand total",
		cartLink:      "Cart link",
		thanks:        "Thank you",
	},
}

// Message formats o as the WhatsApp order text in locale l. Unknown locales
// use Arabic, the shop's working language.
func Message(o Order, l client.Locale) string {
	lb, ok := messageLabels[l]
	if !ok {
		lb = messageLabels[client.LocaleArabic]
	}

	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}

	b.WriteString(lb.greeting + "\n\n")

	c := o.Customer
	b.WriteString(lb.customer + "\n")
	line(lb.name, c.Name)
	line(lb.phone, c.Phone)
	cityLabel := c.City
	if city, ok := CityByCode(c.City); ok {
		cityLabel = city.Label(l)
	}
	line(lb.city, cityLabel)
	line(lb.address, c.Address)
	if strings.TrimSpace(c.Notes) != "" {
		line(lb.notes, c.Notes)
	}
	b.WriteString("\n")

	b.WriteString(lb.products + "\n")
	var items []models.CartItem
	if o.Cart != nil {
		items = o.Cart.Items
	}
	for i, item := range items {
		name := item.ProductName()
		if name == "" {
			name = lb.unnamed
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
		if cat := item.CategoryName(); cat != "" {
			line("   "+lb.category, cat)
		}
		if item.Size != "" {
			line("   "+lb.size, item.Size)
		}
		if item.Color != "" {
			line("   "+lb.color, item.Color)
		}
		line("   "+lb.quantity, item.Quantity.String())
		line("   "+lb.price, "₪ "+item.Price.String())
		line("   "+lb.subtotal, "₪ "+models.Amount(item.Subtotal()).String())
		b.WriteString("\n")
	}

	line(lb.productsTotal, money(Total(o.Cart)))
	line(lb.delivery, money(o.DeliveryCost()))
	line(lb.grandTotal, money(o.GrandTotal()))
	b.WriteString("\n")

	if p := cartPhone(o.Cart); p != "" {
		line(lb.phone, p)
		b.WriteString("\n")
	}
	if o.CartLink != "" {
		line(lb.cartLink, o.CartLink)
		b.WriteString("\n")
	}

	b.WriteString(lb.thanks)
	return b.String()
}

func money(v float64) string {
	return fmt.Sprintf("₪ %.2f", v)
}

func cartPhone(cart *models.Cart) string {
	if cart == nil {
		return ""
	}
	if cart.User != nil && cart.User.Phone != "" {
		return cart.User.Phone
	}
	return cart.Phone
}

// WhatsAppLink returns the wa.me chat link for phone with message prefilled.
// phone may carry "+", a "00" prefix, spaces or dashes.
func WhatsAppLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	digits = strings.TrimPrefix(digits, "00")

	return "https://wa.me/" + digits + "?text=" + encodeComponent(message)
}

// encodeComponent percent-encodes s for a query value, spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
