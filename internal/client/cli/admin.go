package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var errAdminOnly = errors.New("admin only")

func (a *App) Orders(ctx context.Context) error {
	return a.adminReport(ctx, a.orderService.List)
}

// Dashboard prints the overview counts and the detailed statistics.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		return errAdminOnly
	}
	for _, section := range []struct {
		title string
		fetch func(context.Context) (json.RawMessage, error)
	}{
		{"Overview", a.dashboardService.Overview},
		{"Stats", a.dashboardService.Stats},
		{"Products by category", a.dashboardService.ProductsByCategory},
		{"Cart statistics", a.dashboardService.CartStatistics},
		{"Recent activity", a.dashboardService.RecentActivity},
	} {
		raw, err := section.fetch(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", section.title, err)
		}
		fmt.Fprintf(a.out, "== %s\n", section.title)
		if err := printJSON(a.out, raw); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Users(ctx context.Context) error {
	return a.adminReport(ctx, a.dashboardService.Users)
}

func (a *App) adminReport(ctx context.Context, fetch func(context.Context) (json.RawMessage, error)) error {
	if !a.isAdmin(ctx) {
		return errAdminOnly
	}
	raw, err := fetch(ctx)
	if err != nil {
		return err
	}
	return printJSON(a.out, raw)
}
