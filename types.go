package advertise

import (
	"context"
	"time"
)

// Tier classifies a sponsorship purchase.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Sponsor is the company behind a sponsorship.
type Sponsor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`
}

// Sponsoring is one sponsorship agreement. Records are written by the
// checkout flow and only ever read here.
type Sponsoring struct {
	ID        string    `json:"id"`
	Tier      Tier      `json:"tier"`
	Sponsor   Sponsor   `json:"sponsor"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
}

// SponsoringLister returns every sponsorship record ordered by creation time,
// oldest first.
type SponsoringLister interface {
	ListSponsorings(ctx context.Context) ([]Sponsoring, error)
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
