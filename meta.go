package advertise

import (
	"github.com/eringen/advertise/views"
)

// AdvertiseMeta returns the title, description and canonical URL of the
// advertise page. The copy is fixed apart from the site name.
func AdvertiseMeta(cfg SiteConfig) PageMeta {
	return PageMeta{
		Title:       "Advertise on " + cfg.Name,
		Description: "Promote your business or software on " + cfg.Name + " and reach a wide audience of open source enthusiasts.",
		URL:         BuildURL(cfg.URL, "advertise"),
		OGType:      "website",
	}
}

// RootMeta returns the site-wide tags every page inherits.
func RootMeta(cfg SiteConfig) []views.MetaTag {
	return []views.MetaTag{
		{Kind: views.MetaTitle, Key: "title", Content: cfg.Name},
		{Kind: views.MetaName, Key: "description", Content: cfg.Description},
		{Kind: views.MetaProperty, Key: "og:site_name", Content: cfg.Name},
		{Kind: views.MetaProperty, Key: "og:locale", Content: "en_US"},
		{Kind: views.MetaName, Key: "twitter:card", Content: "summary_large_image"},
	}
}

// MetaTags merges page metadata into the parent route's tags. A page tag
// replaces the parent tag with the same kind and key in place; tags the
// parent lacks are appended. Empty page fields leave the parent value alone.
func MetaTags(parent []views.MetaTag, page PageMeta) []views.MetaTag {
	out := make([]views.MetaTag, len(parent))
	copy(out, parent)

	set := func(kind views.MetaKind, key, content string) {
		if content == "" {
			return
		}
		for i := range out {
			if out[i].Kind == kind && out[i].Key == key {
				out[i].Content = content
				return
			}
		}
		out = append(out, views.MetaTag{Kind: kind, Key: key, Content: content})
	}

	set(views.MetaTitle, "title", page.Title)
	set(views.MetaName, "description", page.Description)
	set(views.MetaProperty, "og:title", page.Title)
	set(views.MetaProperty, "og:description", page.Description)
	set(views.MetaProperty, "og:url", page.URL)
	set(views.MetaProperty, "og:type", page.OGType)
	set(views.MetaName, "twitter:title", page.Title)
	set(views.MetaName, "twitter:description", page.Description)
	set(views.MetaLink, "canonical", page.URL)
	return out
}
