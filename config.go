package advertise

import (
	"strings"

	"github.com/eringen/advertise/views"
)

// SiteConfig holds all configuration for an advertise site. It is built once
// at startup and treated as read-only afterwards.
type SiteConfig struct {
	Name         string // Site name (default "OpenAlternative")
	URL          string // Canonical URL (default "http://localhost:3000")
	Email        string // Contact address behind every "Contact us" button
	AnalyticsURL string // Public analytics dashboard linked from the stats intro
	Description  string // Default description for the root meta tags

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/advertise.db")

	Stats []views.Stat // Figures shown by the stats widget; none by default
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "OpenAlternative"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Email == "" {
		c.Email = "hello@openalternative.co"
	}
	if c.AnalyticsURL == "" {
		c.AnalyticsURL = "https://go.openalternative.co/analytics"
	}
	if c.Description == "" {
		c.Description = "A curated collection of the best open source alternatives to everyday SaaS products."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/advertise.db"
	}
}

// view returns the subset of the config that templates read.
func (c SiteConfig) view() views.SiteConfig {
	return views.SiteConfig{
		Name:         c.Name,
		URL:          c.URL,
		Email:        c.Email,
		ContactURL:   MailTo(c),
		AnalyticsURL: c.AnalyticsURL,
		Stats:        c.Stats,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are mounted.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSponsorings replaces the SQLite store as the source of sponsorship
// records. Start skips opening the database when one is set.
func WithSponsorings(l SponsoringLister) Option {
	return func(a *App) {
		a.sponsorings = l
	}
}
