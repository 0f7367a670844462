package views

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"
)

// Layout renders the page shell around body: head tags, breadcrumb trail
// and footer.
func Layout(cfg SiteConfig, head Head, trail []Breadcrumb, body templ.Component) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		writeHeadTags(buf, head.Tags)
		for _, ld := range head.JsonLD {
			buf.WriteString(`<script type="application/ld+json">`)
			// JSON-LD is produced by encoding/json, which escapes <, > and &.
			buf.WriteString(ld)
			buf.WriteString(`</script>`)
		}
		buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
		buf.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
		buf.WriteString(`</head><body><header class="site-header"><a class="site-name" href="/">`)
		buf.WriteString(esc(cfg.Name))
		buf.WriteString(`</a></header>`)
		writeBreadcrumbs(buf, trail)
		buf.WriteString(`<main class="container">`)
		if body != nil {
			if err := body.Render(ctx, buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</main><footer class="site-footer"><p>`)
		buf.WriteString(esc(cfg.Name))
		buf.WriteString(` &middot; <a href="`)
		buf.WriteString(esc(safeURL(cfg.ContactURL)))
		buf.WriteString(`">`)
		buf.WriteString(esc(cfg.Email))
		buf.WriteString(`</a></p></footer></body></html>`)
		return nil
	})
}

func writeHeadTags(buf *bytes.Buffer, tags []MetaTag) {
	for _, t := range tags {
		switch t.Kind {
		case MetaTitle:
			buf.WriteString(`<title>`)
			buf.WriteString(esc(t.Content))
			buf.WriteString(`</title>`)
		case MetaName:
			buf.WriteString(`<meta name="` + esc(t.Key) + `" content="` + esc(t.Content) + `">`)
		case MetaProperty:
			buf.WriteString(`<meta property="` + esc(t.Key) + `" content="` + esc(t.Content) + `">`)
		case MetaLink:
			buf.WriteString(`<link rel="` + esc(t.Key) + `" href="` + esc(safeURL(t.Content)) + `">`)
		}
	}
}

func writeBreadcrumbs(buf *bytes.Buffer, trail []Breadcrumb) {
	if len(trail) == 0 {
		return
	}
	buf.WriteString(`<nav class="breadcrumbs" aria-label="Breadcrumb"><ol>`)
	for i, b := range trail {
		buf.WriteString(`<li>`)
		if i == len(trail)-1 {
			buf.WriteString(`<span aria-current="page">`)
			buf.WriteString(esc(b.Label))
			buf.WriteString(`</span>`)
		} else {
			href := b.Path
			if !strings.HasSuffix(href, "/") {
				href += "/"
			}
			buf.WriteString(`<a href="` + esc(safeURL(href)) + `">`)
			buf.WriteString(esc(b.Label))
			buf.WriteString(`</a>`)
		}
		buf.WriteString(`</li>`)
	}
	buf.WriteString(`</ol></nav>`)
}
