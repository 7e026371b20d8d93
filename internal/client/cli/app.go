package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
	"github.com/dmitrijs2005/gownshop/internal/client/config"
	"github.com/dmitrijs2005/gownshop/internal/client/services"
	"github.com/dmitrijs2005/gownshop/internal/client/session"
	"github.com/dmitrijs2005/gownshop/internal/client/storage"
	"github.com/dmitrijs2005/gownshop/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	locale client.Locale

	authService      services.AuthService
	productService   services.ProductService
	categoryService  services.CategoryService
	cartService      services.CartService
	orderService     services.OrderService
	newsService      services.BulletinService
	promotionService services.BulletinService
	dashboardService services.DashboardService
	appConfigService services.AppConfigService

	session *session.Store
	storage *storage.Storage
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the session store named by c.StoragePath and builds the API
// gateway and services on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	st, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		logger.Error(ctx, "error initializing session store", "error", err)
		return nil, err
	}

	store := session.NewStore(st.KeyValue, logger)

	api := client.NewHTTPClient(client.Options{
		BaseURL:            c.APIBaseURL,
		HTTPClient:         &http.Client{Timeout: c.RequestTimeout},
		Session:            store,
		Logger:             logger,
		PassThroughHeaders: c.PassThroughHeaders,
		Locale:             client.Locale(c.Locale),
	})

	a := newApp(c, logger, api, store)
	a.storage = st
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, api client.Client, store *session.Store) *App {
	return &App{
		config:           c,
		logger:           logger,
		locale:           client.Locale(c.Locale),
		session:          store,
		authService:      services.NewAuthService(api, store),
		productService:   services.NewProductService(api),
		categoryService:  services.NewCategoryService(api),
		cartService:      services.NewCartService(api),
		orderService:     services.NewOrderService(api),
		newsService:      services.NewNewsService(api),
		promotionService: services.NewPromotionService(api),
		dashboardService: services.NewDashboardService(api),
		appConfigService: services.NewAppConfigService(api),
		reader:           bufio.NewReader(os.Stdin),
		out:              os.Stdout,
	}
}

// Run starts the REPL on stdin and closes the session store on exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to the gown shop CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func (a *App) Close() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Warn(context.Background(), "closing session store", "error", err)
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsAuthenticated(ctx)
}

func (a *App) isAdmin(ctx context.Context) bool {
	return a.authService.IsAdmin(ctx)
}

func (a *App) getStatus(ctx context.Context) string {
	switch {
	case a.isAdmin(ctx):
		return "(admin)"
	case a.isLoggedIn(ctx):
		if m := a.authService.MobileNumber(ctx); m != "" {
			return fmt.Sprintf("(%s)", m)
		}
		return "(signed in)"
	default:
		return ""
	}
}
