package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/sapiens-sapiens/storefront/config"
	"github.com/sapiens-sapiens/storefront/internal/adapter/catalog"
	"github.com/sapiens-sapiens/storefront/internal/adapter/httphandler"
	"github.com/sapiens-sapiens/storefront/internal/adapter/storage"
	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/sapiens-sapiens/storefront/internal/core/service"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    catalog.Catalog
	cartDB     storage.CartDB
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initStorage()
	app.initCoreService()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	app.catalog = catalog.New()
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	cartDB, err := storage.NewCartDB(app.ctx, app.cfg.CartDB)
	if err != nil {
		app.fallDown(op, err)
	}
	if err := cartDB.Migrate(); err != nil {
		app.fallDown(op, err)
	}
	app.cartDB = cartDB
}

func (app *App) initCoreService() {
	repo := storage.NewCartRepository(app.cartDB)
	app.service = service.New(app.ctx, app.catalog, repo,
		service.DebounceOpt(app.cfg.SearchDebounce),
		service.ShippingOpt(domain.Money(app.cfg.ShippingCentavos)),
		service.ShareStateOpt(app.cfg.InitialState),
	)

	app.service.Subscribe(func() {
		slog.Debug("storefront state changed",
			"share", app.service.ShareString(),
			"items", app.service.Totals().ItemCount,
		)
	})
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterStorefront(mux, app.service, app.catalog)
	httphandler.RegisterCart(mux, app.service, app.service, app.catalog)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.service.Close()
	app.cartDB.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
