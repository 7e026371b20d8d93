package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gownshop/internal/client/checkout"
	"github.com/dmitrijs2005/gownshop/internal/client/models"
)

func (a *App) Products(ctx context.Context) error {
	products, err := a.productService.List(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE")
	for _, p := range products {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t₪ %s\n", p.ID, p.DisplayName(), category, p.Price)
	}
	return tw.Flush()
}

func (a *App) Product(ctx context.Context, id string) error {
	p, err := a.productService.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ID:   ", p.ID)
	fmt.Fprintln(a.out, "Title:", p.DisplayName())
	fmt.Fprintln(a.out, "Price:", "₪", p.Price)
	if p.Category != nil {
		fmt.Fprintln(a.out, "Category:", p.Category.Name)
	}
	for _, img := range p.Images {
		fmt.Fprintln(a.out, "Image:", img)
	}
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	cats, err := a.categoryService.List(ctx)
	if err != nil {
		return err
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	return tw.Flush()
}

func (a *App) News(ctx context.Context) error {
	items, err := a.newsService.Active(ctx)
	if err != nil {
		return err
	}
	a.printBulletins(items)
	return nil
}

func (a *App) Promotions(ctx context.Context) error {
	items, err := a.promotionService.Active(ctx)
	if err != nil {
		return err
	}
	a.printBulletins(items)
	return nil
}

func (a *App) printBulletins(items []models.NewsItem) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing to show")
		return
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "* %s\n", it.Title)
		if it.Content != "" {
			fmt.Fprintf(a.out, "  %s\n", it.Content)
		}
	}
}

func (a *App) About(ctx context.Context) error {
	raw, err := a.appConfigService.AboutUs(ctx)
	if err != nil {
		return err
	}
	return printJSON(a.out, raw)
}

func (a *App) Cart(ctx context.Context) error {
	cart, err := a.cartService.Get(ctx)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ITEM\tPRODUCT\tSIZE\tCOLOR\tQTY\tPRICE\tSUBTOTAL")
	for _, it := range cart.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t₪ %s\t₪ %s\n",
			it.ID, it.ProductName(), it.Size, it.Color, it.Quantity, it.Price, models.Amount(it.Subtotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Total: ₪ %.2f\n", checkout.Total(cart))
	return nil
}

// AddToCart takes productId [quantity] [size] [color]; quantity defaults to 1.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	req := models.AddCartItemRequest{ProductID: args[0], Quantity: 1}
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil || q < 1 {
			return fmt.Errorf("quantity must be a positive number, got %q", args[1])
		}
		req.Quantity = q
	}
	if len(args) > 2 {
		req.Size = args[2]
	}
	if len(args) > 3 {
		req.Color = args[3]
	}

	if _, err := a.cartService.AddItem(ctx, req); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Added to cart")
	return nil
}

func (a *App) RemoveItem(ctx context.Context, id string) error {
	if err := a.cartService.RemoveItem(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Removed")
	return nil
}

func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cartService.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Cart cleared")
	return nil
}
