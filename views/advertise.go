package views

import (
	"bytes"
	"context"

	"github.com/a-h/templ"
)

// advertisingOptions are the cards of the "Advertising Options" grid.
var advertisingOptions = [...]AdvertisingOption{
	{
		Icon:        `<rect width="18" height="18" x="3" y="3" rx="2"/><path d="M12 8v8"/><path d="m8.5 14 7-4"/><path d="m8.5 10 7 4"/>`,
		Title:       "Featured Listings",
		Description: "Get a prominent listing on our homepage, alternative rankings and categories. Available only for open source projects listed on our site.",
	},
	{
		Icon:        `<path d="m3 11 18-5v12L3 14v-3z"/><path d="M11.6 16.8a3 3 0 1 1-5.8-1.6"/>`,
		Title:       "Advertising Banners",
		Description: "We offer a variety of banner ads that you can display on your website to reach our audience. You can choose where to display them.",
	},
	{
		Icon:        `<path d="m22 2-7 20-4-9-9-4Z"/><path d="M22 2 11 13"/>`,
		Title:       "Newsletter Sponsorship",
		Description: "Get featured in our monthly newsletter read by tech enthusiasts. Include a personalized message to our audience with your link.",
	},
	{
		Icon:        `<path d="M15 14c.2-1 .7-1.7 1.5-2.5 1-.9 1.5-2.2 1.5-3.5A6 6 0 0 0 6 8c0 1 .2 2.2 1.5 3.5.7.7 1.3 1.5 1.5 2.5"/><path d="M9 18h6"/><path d="M10 22h4"/>`,
		Title:       "Custom Marketing Plan",
		Description: "If none of the options discussed align with your marketing strategies, please send us an email so we can discuss your specific needs.",
	},
}

// AdvertisingOptions returns a copy of the fixed option cards.
func AdvertisingOptions() []AdvertisingOption {
	out := make([]AdvertisingOption, len(advertisingOptions))
	copy(out, advertisingOptions[:])
	return out
}

// Advertise renders the full advertise page inside the layout.
func Advertise(cfg SiteConfig, page AdvertisePage) templ.Component {
	return Layout(cfg, page.Head, page.Trail, AdvertiseContent(cfg, page))
}

// AdvertiseContent renders the page body without the shell.
func AdvertiseContent(cfg SiteConfig, page AdvertisePage) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString(`<section class="hero intro-center">`)
		buf.WriteString(`<h1 class="intro-title">` + esc(page.Title) + `</h1>`)
		buf.WriteString(`<p class="intro-description">` + esc(page.Description) + `</p>`)
		contactButton(buf, cfg, "primary")
		buf.WriteString(`</section>`)

		buf.WriteString(`<section class="numbers intro-center">`)
		buf.WriteString(`<p class="muted">Why ` + esc(cfg.Name) + `?</p>`)
		buf.WriteString(`<h2 class="intro-title">The Numbers Don&#39;t Lie</h2>`)
		buf.WriteString(`<p class="intro-description">Discover the potential of advertising with us. Check our `)
		buf.WriteString(`<a href="` + esc(safeURL(cfg.AnalyticsURL)) + `" target="_blank" rel="noopener noreferrer nofollow">real-time analytics</a>`)
		buf.WriteString(` to see what impact it could have on your business.</p>`)
		buf.WriteString(`</section>`)

		if err := Stats(cfg.Stats).Render(ctx, buf); err != nil {
			return err
		}

		buf.WriteString(`<section class="options">`)
		intro(buf, "h2", "Advertising Options", "We only accept advertisements promoting services and products that are relevant to open source. They should cover informational topics or provide incentives that benefit our visitors.")
		buf.WriteString(`<div class="options-grid">`)
		for _, o := range advertisingOptions {
			writeOption(buf, o)
		}
		buf.WriteString(`</div></section>`)

		if len(page.Sponsors) > 0 {
			buf.WriteString(`<section class="premium-sponsors" id="sponsors">`)
			buf.WriteString(`<p class="muted">Join these companies in advertising their business on ` + esc(cfg.Name) + `</p>`)
			if err := Sponsors(page.Sponsors).Render(ctx, buf); err != nil {
				return err
			}
			buf.WriteString(`</section>`)
		}

		buf.WriteString(`<hr>`)

		buf.WriteString(`<section class="closing intro-center">`)
		buf.WriteString(`<h2 class="intro-title">Ready to Learn More?</h2>`)
		buf.WriteString(`<p class="intro-description">Tell us more about your company and we will get back to you as soon as possible.</p>`)
		contactButton(buf, cfg, "fancy")
		buf.WriteString(`</section>`)
		return nil
	})
}

func writeOption(buf *bytes.Buffer, o AdvertisingOption) {
	buf.WriteString(`<div class="option-card">`)
	buf.WriteString(`<svg class="option-icon" xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`)
	buf.WriteString(o.Icon)
	buf.WriteString(`</svg>`)
	buf.WriteString(`<strong class="option-title">` + esc(o.Title) + `</strong>`)
	buf.WriteString(`<p class="option-description">` + esc(o.Description) + `</p>`)
	buf.WriteString(`</div>`)
}
