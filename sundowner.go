// Package sundowner is the web application behind the Sundowner safari
// planning site, built with Go, Echo, and templ. It serves the editorial
// catalog (stories, decision pages, trip itineraries, park guides) from
// an in-memory registry, plus RSS, sitemap, newsletter signup, and an
// ops dashboard for the subscriber list.
package sundowner

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okavangolabs/sundowner/content"
	"github.com/okavangolabs/sundowner/subscribers"
	"github.com/okavangolabs/sundowner/views"
)

// App is the central application. It wires together the content
// registry, the subscriber store, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo

	Registry *content.Registry
	Topics   *content.TopicIndex
	Resolver *content.Resolver

	Subs   *subscribers.Store
	Counts *subscribers.CountCache

	site         views.SiteConfig
	keyLimiter   *KeyLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App serving the given registry and topic index.
// Records must be registered before New; the site never mutates them.
func New(cfg SiteConfig, reg *content.Registry, topics *content.TopicIndex, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Registry: reg,
		Topics:   topics,
		Resolver: content.NewResolver(reg, topics, cfg.RelatedCaps),
		site: views.SiteConfig{
			Name:        cfg.Name,
			URL:         cfg.URL,
			Description: cfg.Description,
			Author:      cfg.Author,
		},
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the subscriber store, middleware, and routes, then
// starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.OpsKey == "" {
		return fmt.Errorf("sundowner: OpsKey is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("sundowner: SessionSecret is required")
	}

	subs, err := subscribers.NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("sundowner: init subscriber store: %w", err)
	}
	a.Subs = subs
	a.Counts = subscribers.NewCountCache(subs, a.Config.CountCacheTTL)
	a.keyLimiter = NewKeyLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets are served by name under /public/ and everything
	// else falls through to the on-disk static dir.
	assetsFS, _ := fs.Sub(Assets, "assets")
	assetsHandler := http.FileServer(http.FS(assetsFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", assetsHandler)))
	e.GET("/public/newsletter.js", echo.WrapHandler(http.StripPrefix("/public/", assetsHandler)))
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/stories/", a.handleStories)
	e.GET("/stories/:slug/", a.handleStory)
	e.GET("/decisions/", a.handleDecisions)
	e.GET("/decisions/:bucket/", a.handleBucket)
	e.GET("/decisions/:bucket/:slug/", a.handleDecision)
	e.GET("/trips/", a.handleTrips)
	e.GET("/trips/:slug/", a.handleTrip)
	e.GET("/guides/", a.handleGuides)
	e.GET("/guides/:slug/", a.handleGuide)

	e.GET("/newsletter/confirm/:token/", a.handleConfirm)
	e.GET("/newsletter/unsubscribe/:token/", a.handleUnsubscribe)

	// Ops dashboard (browser, session after key login)
	e.GET("/ops/", a.handleOps)
	e.POST("/ops/login/", a.handleOpsLogin)
	e.POST("/ops/logout/", handleOpsLogout)
	e.POST("/ops/subscribers/:id/status/", a.handleOpsStatus)
	e.POST("/ops/subscribers/:id/delete/", a.handleOpsDelete)
	e.GET("/ops/images/", a.handleImageList)
	e.POST("/ops/images/upload/", a.handleImageUpload)
	e.POST("/ops/images/:filename/delete/", a.handleImageDelete)

	// Ops API (X-Ops-Key header or ?key=, also valid with a session)
	// plus the public subscribe endpoint.
	opsAPI := e.Group("/ops")
	opsAPI.Use(a.requireOpsKey)
	subscribers.NewHandler(a.Subs, a.Counts).RegisterRoutes(e, opsAPI)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Subs != nil {
		return a.Subs.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback
// if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("sundowner: required environment variable %s is not set", key)
	}
	return v
}
