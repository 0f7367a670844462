package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// component adapts a buffer-writing function to templ.Component. Output is
// only written to w once fn has finished without error.
func component(fn func(ctx context.Context, buf *bytes.Buffer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := fn(ctx, &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// safeURL returns u when it is an http(s), mailto or site-relative link,
// and "#" otherwise.
func safeURL(u string) string {
	u = strings.TrimSpace(u)
	if strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") {
		return u
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return u
	}
	return "#"
}

// intro writes a centered title/description block.
func intro(buf *bytes.Buffer, tag, title, description string) {
	buf.WriteString(`<div class="intro">`)
	buf.WriteString("<" + tag + ` class="intro-title">`)
	buf.WriteString(esc(title))
	buf.WriteString("</" + tag + ">")
	if description != "" {
		buf.WriteString(`<p class="intro-description">`)
		buf.WriteString(esc(description))
		buf.WriteString(`</p>`)
	}
	buf.WriteString(`</div>`)
}

// contactButton writes the mailto call-to-action.
func contactButton(buf *bytes.Buffer, cfg SiteConfig, variant string) {
	buf.WriteString(`<a class="button button-`)
	buf.WriteString(variant)
	buf.WriteString(`" data-cta="contact" href="`)
	buf.WriteString(esc(safeURL(cfg.ContactURL)))
	buf.WriteString(`">Contact us</a>`)
}
