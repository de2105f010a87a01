package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// page wraps a body writer in the site shell and returns it as a templ
// component. All exported page components are built on this.
func page(sh Shell, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		writeHead(&b, sh)
		writeNav(&b, sh)
		b.WriteString(`<main class="content">`)
		body(&b)
		b.WriteString(`</main>`)
		writeFooter(&b, sh)
		b.WriteString(`</body></html>`)
		_, err := w.Write(b.Bytes())
		return err
	})
}

func writeHead(b *bytes.Buffer, sh Shell) {
	meta := sh.Meta
	title := meta.Title
	if title == "" {
		title = sh.Site.Name
	} else if title != sh.Site.Name {
		title += " · " + sh.Site.Name
	}
	desc := meta.Description
	if desc == "" {
		desc = sh.Site.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString(`<title>` + html.EscapeString(title) + `</title>`)
	if desc != "" {
		b.WriteString(`<meta name="description" content="` + html.EscapeString(desc) + `">`)
	}
	if meta.Noindex {
		b.WriteString(`<meta name="robots" content="noindex">`)
	}
	if meta.URL != "" {
		b.WriteString(`<link rel="canonical" href="` + html.EscapeString(meta.URL) + `">`)
		b.WriteString(`<meta property="og:url" content="` + html.EscapeString(meta.URL) + `">`)
	}
	b.WriteString(`<meta property="og:site_name" content="` + html.EscapeString(sh.Site.Name) + `">`)
	b.WriteString(`<meta property="og:title" content="` + html.EscapeString(title) + `">`)
	if desc != "" {
		b.WriteString(`<meta property="og:description" content="` + html.EscapeString(desc) + `">`)
	}
	b.WriteString(`<meta property="og:type" content="` + html.EscapeString(ogType) + `">`)
	if meta.Image != "" {
		b.WriteString(`<meta property="og:image" content="` + html.EscapeString(meta.Image) + `">`)
	}
	b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + html.EscapeString(sh.Site.Name) + `" href="/feed.xml">`)
	b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
	b.WriteString(`<link rel="stylesheet" href="/public/style.css">`)
	for _, block := range sh.JSONLD {
		b.WriteString(`<script type="application/ld+json">`)
		b.WriteString(jsonLDEscape(block))
		b.WriteString(`</script>`)
	}
	b.WriteString(`</head><body>`)
}

// jsonLDEscape keeps a JSON-LD payload from terminating its script tag.
func jsonLDEscape(s string) string {
	return strings.ReplaceAll(s, "</", `<\/`)
}

var navSections = []struct {
	Slug, Label, Path string
}{
	{"stories", "Stories", "/stories/"},
	{"decisions", "Decisions", "/decisions/"},
	{"trips", "Trips", "/trips/"},
	{"guides", "Guides", "/guides/"},
}

func writeNav(b *bytes.Buffer, sh Shell) {
	b.WriteString(`<header class="site-header"><nav>`)
	b.WriteString(`<a class="brand" href="/">` + html.EscapeString(sh.Site.Name) + `</a>`)
	b.WriteString(`<ul class="nav-links">`)
	for _, s := range navSections {
		cls := ""
		if s.Slug == sh.Active {
			cls = ` class="active"`
		}
		b.WriteString(`<li><a` + cls + ` href="` + s.Path + `">` + s.Label + `</a></li>`)
	}
	b.WriteString(`</ul></nav></header>`)
}

func writeFooter(b *bytes.Buffer, sh Shell) {
	b.WriteString(`<footer class="site-footer">`)
	writeNewsletterBox(b, sh)
	b.WriteString(`<p class="colophon">` + html.EscapeString(sh.Site.Name))
	b.WriteString(` · <a href="/feed.xml">RSS</a></p>`)
	b.WriteString(`</footer>`)
	b.WriteString(`<script src="/public/newsletter.js" defer></script>`)
}

func writeNewsletterBox(b *bytes.Buffer, sh Shell) {
	b.WriteString(`<section class="newsletter" id="newsletter">`)
	b.WriteString(`<h2>The Sundowner dispatch</h2>`)
	if sh.Readers > 0 {
		b.WriteString(`<p>Trip math and honest timing calls. Join ` + strconv.Itoa(sh.Readers) + ` readers.</p>`)
	} else {
		b.WriteString(`<p>Trip math and honest timing calls, straight to your inbox.</p>`)
	}
	b.WriteString(`<form class="newsletter-form" method="post" action="/api/subscribe" data-source="footer">`)
	b.WriteString(`<input type="email" name="email" placeholder="you@example.com" required autocomplete="email">`)
	b.WriteString(`<input type="text" name="website" tabindex="-1" autocomplete="off" aria-hidden="true" class="hp-field">`)
	b.WriteString(`<button type="submit">Subscribe</button>`)
	b.WriteString(`<p class="form-note" role="status"></p>`)
	b.WriteString(`</form></section>`)
}
