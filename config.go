package sundowner

import (
	"time"

	"github.com/okavangolabs/sundowner/content"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string // Site name (default "Sundowner")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // Subscriber SQLite path (default "data/subscribers.db")

	OpsKey        string // Required: shared key for the ops dashboard
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	RelatedCaps   content.Caps  // Related-block caps (default 3 decisions / 2 trips / 2 guides)
	CountCacheTTL time.Duration // Subscriber count cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Sundowner"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/subscribers.db"
	}
	if c.RelatedCaps == (content.Caps{}) {
		c.RelatedCaps = content.DefaultCaps
	}
	if c.CountCacheTTL == 0 {
		c.CountCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes, before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for on-disk static assets served
// under /public/ behind the embedded ones (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
