package advertise

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/advertise/views"
)

func (a *App) handleAdvertise(c echo.Context) error {
	sponsorings, err := a.sponsorings.ListSponsorings(c.Request().Context())
	if err != nil {
		return fmt.Errorf("advertise: load sponsorings: %w", err)
	}
	meta := AdvertiseMeta(a.Config)
	return Render(c, views.Advertise(a.Config.view(), a.advertisePage(meta, sponsorings)))
}

// advertisePage builds the view model: premium sponsors are derived from the
// full record set on every render.
func (a *App) advertisePage(meta PageMeta, sponsorings []Sponsoring) views.AdvertisePage {
	trail := Breadcrumbs(AdvertiseBreadcrumb)
	premium := PremiumSponsors(sponsorings)
	cards := make([]views.SponsorCard, 0, len(premium))
	for _, s := range premium {
		cards = append(cards, views.SponsorCard{
			Name:        s.Sponsor.Name,
			Description: s.Sponsor.Description,
			Website:     s.Sponsor.Website,
			LogoURL:     s.Sponsor.LogoURL,
		})
	}
	return views.AdvertisePage{
		Title:       meta.Title,
		Description: meta.Description,
		Head: views.Head{
			Tags:   MetaTags(RootMeta(a.Config), meta),
			JsonLD: []string{BreadcrumbJsonLD(a.Config, trail)},
		},
		Trail:    trail,
		Sponsors: cards,
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func handleRootRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/advertise/")
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt from the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	// The client went away before the query finished; there is nobody to answer.
	if errors.Is(err, context.Canceled) || errors.Is(c.Request().Context().Err(), context.Canceled) {
		c.Logger().Debugf("request cancelled: %v", err)
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.view()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Response().Header().Set("Cache-Control", "no-store")
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.view()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
