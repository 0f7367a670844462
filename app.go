// Package advertise serves the "Advertise" landing page of a content site:
// marketing copy, site figures, advertising options and a showcase of the
// premium sponsors loaded from SQLite.
package advertise

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	glog "github.com/labstack/gommon/log"
)

// App is the central application. It wires together the store, handlers,
// middleware and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store

	sponsorings  SponsoringLister
	customRoutes []func(*App)
	staticDir    string
	ready        bool
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(glog.INFO)

	a := &App{
		Config:    cfg,
		Echo:      e,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the store unless a SponsoringLister was injected, then mounts
// middleware and routes. It is idempotent.
func (a *App) Init() error {
	if a.ready {
		return nil
	}
	if a.sponsorings == nil {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("advertise: init store: %w", err)
		}
		a.Store = store
		a.sponsorings = store
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Handler returns the initialized HTTP handler without starting a listener.
func (a *App) Handler() (http.Handler, error) {
	if err := a.Init(); err != nil {
		return nil, err
	}
	return a.Echo, nil
}

// Start initializes the app and serves HTTP on Config.Addr until the server
// is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("advertise: listening on %s", a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)

	e.GET("/", handleRootRedirect)
	e.GET("/advertise/", a.handleAdvertise)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
