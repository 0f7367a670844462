package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Something went wrong", "We could not load this page. Please try again in a moment.")
}

func errorPage(cfg SiteConfig, title, message string) templ.Component {
	head := Head{Tags: []MetaTag{
		{Kind: MetaTitle, Key: "title", Content: title + " | " + cfg.Name},
		{Kind: MetaName, Key: "robots", Content: "noindex"},
	}}
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<section class="error intro-center">`)
		intro(buf, "h1", title, message)
		buf.WriteString(`<a class="button button-primary" href="/">Back to home</a>`)
		buf.WriteString(`</section>`)
		return nil
	})
	return Layout(cfg, head, nil, body)
}
