package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func testSite() SiteConfig {
	return SiteConfig{
		Name:         "OpenAlternative",
		URL:          "https://openalternative.co",
		Email:        "hello@openalternative.co",
		ContactURL:   "mailto:hello@openalternative.co",
		AnalyticsURL: "https://go.openalternative.co/analytics",
		Stats:        []Stat{{Value: "10k", Label: "Visitors"}},
	}
}

func TestAdvertisingOptionsFixed(t *testing.T) {
	opts := AdvertisingOptions()
	if len(opts) != 4 {
		t.Fatalf("options = %d, want 4", len(opts))
	}
	want := []string{"Featured Listings", "Advertising Banners", "Newsletter Sponsorship", "Custom Marketing Plan"}
	for i, title := range want {
		if opts[i].Title != title {
			t.Errorf("opts[%d].Title = %q, want %q", i, opts[i].Title, title)
		}
	}
	opts[0].Title = "mutated"
	if AdvertisingOptions()[0].Title != "Featured Listings" {
		t.Error("AdvertisingOptions should return a copy")
	}
}

func TestAdvertiseContentSections(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		sponsors := make([]SponsorCard, n)
		for i := range sponsors {
			sponsors[i] = SponsorCard{Name: "S"}
		}
		out := renderString(t, AdvertiseContent(testSite(), AdvertisePage{Title: "T", Sponsors: sponsors}))

		if got := strings.Count(out, `class="option-card"`); got != 4 {
			t.Errorf("n=%d: option cards = %d, want 4", n, got)
		}
		hasSection := strings.Contains(out, `id="sponsors"`)
		if hasSection != (n > 0) {
			t.Errorf("n=%d: sponsors section present = %v", n, hasSection)
		}
		if got := strings.Count(out, `data-cta="contact"`); got != 2 {
			t.Errorf("n=%d: contact buttons = %d, want 2", n, got)
		}
		if !strings.Contains(out, "<dd>10k</dd>") {
			t.Errorf("n=%d: stats widget missing", n)
		}
	}
}

func TestAdvertiseContentEscapes(t *testing.T) {
	page := AdvertisePage{
		Title:    `<script>alert(1)</script>`,
		Sponsors: []SponsorCard{{Name: `A&B <Co>`, Website: "javascript:alert(1)"}},
	}
	out := renderString(t, AdvertiseContent(testSite(), page))

	if strings.Contains(out, "<script>") {
		t.Error("title not escaped")
	}
	if !strings.Contains(out, "A&amp;B &lt;Co&gt;") {
		t.Error("sponsor name not escaped")
	}
	if strings.Contains(out, "javascript:") {
		t.Error("unsafe sponsor URL rendered")
	}
}

func TestStatsEmpty(t *testing.T) {
	if out := renderString(t, Stats(nil)); out != "" {
		t.Errorf("Stats(nil) = %q, want empty", out)
	}
}

func TestSafeURL(t *testing.T) {
	tests := map[string]string{
		"https://acme.example":    "https://acme.example",
		"http://acme.example/x":   "http://acme.example/x",
		"mailto:a@b.c":            "mailto:a@b.c",
		"/advertise/":             "/advertise/",
		"//evil.example":          "#",
		"javascript:alert(1)":     "#",
		"  JavaScript:alert(1)  ": "#",
		"":                        "#",
	}
	for in, want := range tests {
		if got := safeURL(in); got != want {
			t.Errorf("safeURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLayoutWritesHead(t *testing.T) {
	head := Head{
		Tags: []MetaTag{
			{Kind: MetaTitle, Key: "title", Content: "Hello & Welcome"},
			{Kind: MetaName, Key: "description", Content: `say "hi"`},
			{Kind: MetaLink, Key: "canonical", Content: "https://openalternative.co/advertise/"},
		},
		JsonLD: []string{`{"@type":"BreadcrumbList"}`},
	}
	trail := []Breadcrumb{{Path: "/", Label: "Home"}, {Path: "/advertise", Label: "Advertise"}}
	out := renderString(t, Layout(testSite(), head, trail, nil))

	for _, want := range []string{
		"<title>Hello &amp; Welcome</title>",
		`<meta name="description" content="say &#34;hi&#34;">`,
		`<link rel="canonical" href="https://openalternative.co/advertise/">`,
		`<script type="application/ld+json">{"@type":"BreadcrumbList"}</script>`,
		`<a href="/">Home</a>`,
		`<span aria-current="page">Advertise</span>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("layout missing %q", want)
		}
	}
}

func TestErrorPages(t *testing.T) {
	if out := renderString(t, NotFound(testSite())); !strings.Contains(out, "Page not found") {
		t.Error("NotFound missing heading")
	}
	out := renderString(t, ServerError(testSite()))
	if !strings.Contains(out, "Something went wrong") || !strings.Contains(out, `content="noindex"`) {
		t.Error("ServerError missing content")
	}
}
