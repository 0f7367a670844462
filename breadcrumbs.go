package advertise

import (
	"encoding/json"

	"github.com/eringen/advertise/views"
)

// AdvertiseBreadcrumb is the trail entry contributed by the advertise route.
var AdvertiseBreadcrumb = views.Breadcrumb{Path: "/advertise", Label: "Advertise"}

// Breadcrumbs returns the trail for a page: Home followed by entries.
func Breadcrumbs(entries ...views.Breadcrumb) []views.Breadcrumb {
	trail := make([]views.Breadcrumb, 0, len(entries)+1)
	trail = append(trail, views.Breadcrumb{Path: "/", Label: "Home"})
	return append(trail, entries...)
}

// BreadcrumbJsonLD returns a Schema.org BreadcrumbList for trail.
func BreadcrumbJsonLD(cfg SiteConfig, trail []views.Breadcrumb) string {
	items := make([]map[string]interface{}, 0, len(trail))
	for i, b := range trail {
		items = append(items, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     b.Label,
			"item":     BuildURL(cfg.URL, b.Path),
		})
	}
	data := map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
