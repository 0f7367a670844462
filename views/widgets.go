package views

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"
)

// Stats renders the site figures widget. Nothing is written for an empty list.
func Stats(stats []Stat) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		if len(stats) == 0 {
			return nil
		}
		buf.WriteString(`<dl class="stats">`)
		for _, s := range stats {
			buf.WriteString(`<div class="stat"><dt>` + esc(s.Label) + `</dt><dd>` + esc(s.Value) + `</dd></div>`)
		}
		buf.WriteString(`</dl>`)
		return nil
	})
}

// Sponsors renders sponsor cards in the given order.
func Sponsors(sponsors []SponsorCard) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<ul class="sponsors">`)
		for _, s := range sponsors {
			buf.WriteString(`<li class="sponsor">`)
			href := safeURL(s.Website)
			buf.WriteString(`<a href="` + esc(href) + `" target="_blank" rel="noopener noreferrer" title="` + esc(s.Description) + `">`)
			if strings.TrimSpace(s.LogoURL) != "" {
				buf.WriteString(`<img src="` + esc(safeURL(s.LogoURL)) + `" alt="` + esc(s.Name) + `" width="32" height="32" loading="lazy">`)
			}
			buf.WriteString(`<span class="sponsor-name">` + esc(s.Name) + `</span>`)
			buf.WriteString(`</a></li>`)
		}
		buf.WriteString(`</ul>`)
		return nil
	})
}
