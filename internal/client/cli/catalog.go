package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/filex"
)

var errImageRequired = errors.New("at least one image is required")

// productSize is one entry of the "sizes" form field.
type productSize struct {
	Size                string   `json:"size"`
	PriceBeforeDiscount *float64 `json:"priceBeforeDiscount"`
	PriceAfterDiscount  float64  `json:"priceAfterDiscount"`
}

// parseSizes reads "S:100,M:120:150" as size:price[:priceBeforeDiscount].
// Blank entries are skipped.
func parseSizes(s string) ([]productSize, error) {
	sizes := []productSize{}
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("bad size %q, want size:price[:priceBefore]", entry)
		}
		ps := productSize{Size: strings.TrimSpace(parts[0])}

		price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad price in %q: %w", entry, err)
		}
		ps.PriceAfterDiscount = price

		if len(parts) == 3 {
			before, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("bad price in %q: %w", entry, err)
			}
			ps.PriceBeforeDiscount = &before
		}
		sizes = append(sizes, ps)
	}
	return sizes, nil
}

// AddProduct prompts for the product fields and image paths and uploads them.
func (a *App) AddProduct(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		return errAdminOnly
	}
	form, closeImages, err := a.readProductForm()
	if err != nil {
		return err
	}
	defer closeImages()

	raw, err := a.productService.Create(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Product created")
	return printJSON(a.out, raw)
}

// UpdateProduct replaces every field and image of product id.
func (a *App) UpdateProduct(ctx context.Context, id string) error {
	if !a.isAdmin(ctx) {
		return errAdminOnly
	}
	form, closeImages, err := a.readProductForm()
	if err != nil {
		return err
	}
	defer closeImages()

	raw, err := a.productService.Update(ctx, id, form)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Product updated")
	return printJSON(a.out, raw)
}

func (a *App) DeleteProduct(ctx context.Context, id string) error {
	if !a.isAdmin(ctx) {
		return errAdminOnly
	}
	if err := a.productService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Product deleted")
	return nil
}

// readProductForm builds the multipart form. The returned func closes the
// opened image files and is safe to call when err is non-nil.
func (a *App) readProductForm() (*client.MultipartForm, func(), error) {
	var images []*filex.Image
	closeImages := func() {
		for _, img := range images {
			_ = img.Close()
		}
	}

	fields := []struct{ name, prompt, def string }{
		{"title", "Enter title", ""},
		{"name", "Enter name", ""},
		{"categoryId", "Enter category id", ""},
		{"quantity", "Enter quantity", "0"},
	}
	form := &client.MultipartForm{}
	for _, f := range fields {
		v, err := textWithDefault(a.reader, f.prompt, f.def, a.out)
		if err != nil {
			return nil, closeImages, err
		}
		if f.name == "quantity" {
			if _, err := strconv.Atoi(v); err != nil {
				return nil, closeImages, fmt.Errorf("bad quantity %q", v)
			}
		}
		form.Fields = append(form.Fields, client.FormField{Name: f.name, Value: v})
	}

	description, err := getMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return nil, closeImages, err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", a.out)
	if err != nil {
		return nil, closeImages, err
	}

	sizesLine, err := getSimpleText(a.reader, "Sizes, e.g. S:100,M:120:150", a.out)
	if err != nil {
		return nil, closeImages, err
	}
	sizes, err := parseSizes(sizesLine)
	if err != nil {
		return nil, closeImages, err
	}
	sizesJSON, err := json.Marshal(sizes)
	if err != nil {
		return nil, closeImages, err
	}

	form.Fields = append(form.Fields,
		client.FormField{Name: "description", Value: description},
		client.FormField{Name: "note", Value: note},
		client.FormField{Name: "sizes", Value: string(sizesJSON)},
	)

	paths, err := getSimpleText(a.reader, "Image paths, comma separated", a.out)
	if err != nil {
		return nil, closeImages, err
	}
	for _, p := range strings.Split(paths, ",") {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		img, err := filex.OpenImage(p)
		if err != nil {
			return nil, closeImages, err
		}
		images = append(images, img)
		form.Files = append(form.Files, client.FormFile{
			FieldName:   "images",
			FileName:    img.Name,
			ContentType: img.ContentType,
			Content:     img,
		})
	}
	if len(images) == 0 {
		return nil, closeImages, errImageRequired
	}

	return form, closeImages, nil
}
