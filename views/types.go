package views

// SiteConfig holds the site-wide settings templates read. It mirrors the
// app configuration so this package stays free of app imports.
type SiteConfig struct {
	Name         string
	URL          string
	Email        string
	ContactURL   string // mailto: link behind every "Contact us" button
	AnalyticsURL string
	Stats        []Stat
}

// Stat is one figure in the stats widget.
type Stat struct {
	Value string
	Label string
}

// MetaKind selects how a MetaTag is written into <head>.
type MetaKind int

const (
	MetaTitle    MetaKind = iota // <title>
	MetaName                     // <meta name=...>
	MetaProperty                 // <meta property=...> (OpenGraph)
	MetaLink                     // <link rel=...>
)

// MetaTag is a single head entry.
type MetaTag struct {
	Kind    MetaKind
	Key     string
	Content string
}

// Head is everything the layout writes into <head> besides static assets.
type Head struct {
	Tags   []MetaTag
	JsonLD []string
}

// Breadcrumb is one entry of the navigation trail.
type Breadcrumb struct {
	Path  string
	Label string
}

// SponsorCard is a premium sponsor as shown in the showcase.
type SponsorCard struct {
	Name        string
	Description string
	Website     string
	LogoURL     string
}

// AdvertisingOption is one of the fixed cards in the options grid.
type AdvertisingOption struct {
	Icon        string // inline SVG body
	Title       string
	Description string
}

// AdvertisePage is the view model of the advertise page.
type AdvertisePage struct {
	Title       string
	Description string
	Head        Head
	Trail       []Breadcrumb
	Sponsors    []SponsorCard // premium sponsors, already filtered
}
