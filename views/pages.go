package views

import (
	"bytes"
	"html"
	"strconv"

	"github.com/a-h/templ"

	"github.com/okavangolabs/sundowner/content"
	"github.com/okavangolabs/sundowner/markup"
)

// Home renders the landing page: the pitch, the decision buckets, and
// the latest published work.
func Home(sh Shell, groups []DecisionGroup, latest []Card) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<section class="hero">`)
		b.WriteString(`<h1>` + html.EscapeString(sh.Site.Name) + `</h1>`)
		if sh.Site.Description != "" {
			b.WriteString(`<p class="standfirst">` + html.EscapeString(sh.Site.Description) + `</p>`)
		}
		b.WriteString(`</section>`)

		if len(groups) > 0 {
			b.WriteString(`<section class="decision-index"><h2>Decisions we help you make</h2>`)
			for _, g := range groups {
				b.WriteString(`<h3><a href="` + html.EscapeString(content.BucketURL(g.Bucket)) + `">` + html.EscapeString(g.Label) + `</a></h3>`)
				b.WriteString(`<ul class="question-list">`)
				for _, card := range g.Cards {
					b.WriteString(`<li><a href="` + html.EscapeString(card.URL) + `">` + html.EscapeString(card.Title) + `</a></li>`)
				}
				b.WriteString(`</ul>`)
			}
			b.WriteString(`</section>`)
		}

		if len(latest) > 0 {
			b.WriteString(`<section class="latest"><h2>Latest</h2>`)
			writeCards(b, latest)
			b.WriteString(`</section>`)
		}
	})
}

// Listing renders a section index page (/stories/, /trips/, /guides/,
// and single decision buckets).
func Listing(sh Shell, heading, intro string, cards []Card) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<h1>` + html.EscapeString(heading) + `</h1>`)
		if intro != "" {
			b.WriteString(`<p class="standfirst">` + html.EscapeString(intro) + `</p>`)
		}
		if len(cards) == 0 {
			b.WriteString(`<p class="empty">Nothing published here yet.</p>`)
			return
		}
		writeCards(b, cards)
	})
}

// DecisionsIndex renders /decisions/: every bucket with its answered
// questions.
func DecisionsIndex(sh Shell, groups []DecisionGroup) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<h1>Decisions</h1>`)
		b.WriteString(`<p class="standfirst">One question per page, answered properly. Start with the one blocking your booking.</p>`)
		for _, g := range groups {
			b.WriteString(`<section class="bucket">`)
			b.WriteString(`<h2><a href="` + html.EscapeString(content.BucketURL(g.Bucket)) + `">` + html.EscapeString(g.Label) + `</a></h2>`)
			writeCards(b, g.Cards)
			b.WriteString(`</section>`)
		}
	})
}

// Article renders a full record page: story, decision, trip, or guide.
func Article(sh Shell, pg ArticlePage) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		a := pg.Article
		b.WriteString(`<article>`)
		b.WriteString(`<header class="article-header">`)
		if pg.Question != "" {
			b.WriteString(`<p class="crumb"><a href="/decisions/">Decisions</a> · <a href="` +
				html.EscapeString(content.BucketURL(pg.Bucket)) + `">` + html.EscapeString(BucketLabel(pg.Bucket)) + `</a></p>`)
			b.WriteString(`<h1>` + html.EscapeString(pg.Question) + `</h1>`)
		} else {
			b.WriteString(`<h1>` + html.EscapeString(a.Title) + `</h1>`)
		}
		if a.Subtitle != "" {
			b.WriteString(`<p class="standfirst">` + html.EscapeString(a.Subtitle) + `</p>`)
		}
		b.WriteString(`<p class="article-meta">Updated ` + html.EscapeString(FormatDate(a.Updated)) +
			` · ` + strconv.Itoa(pg.Minutes) + ` min read`)
		if !a.Published {
			b.WriteString(` · <span class="draft-flag">Draft</span>`)
		}
		b.WriteString(`</p>`)
		b.WriteString(`</header>`)
		if a.Hero != "" {
			b.WriteString(`<img class="hero-image" src="` + html.EscapeString(a.Hero) + `" alt="` + html.EscapeString(a.Title) + `">`)
		}
		for _, sec := range a.Sections {
			b.WriteString(`<section><h2>` + html.EscapeString(sec.Name) + `</h2>`)
			markup.RenderSection(b, sec.Body)
			b.WriteString(`</section>`)
		}
		b.WriteString(`</article>`)
		writeRelated(b, pg.Related)
	})
}

// writeRelated renders the related-content block. The whole block is
// omitted when nothing resolved.
func writeRelated(b *bytes.Buffer, rel content.Related) {
	if rel.Empty() {
		return
	}
	b.WriteString(`<aside class="related"><h2>Keep planning</h2>`)
	writeRelatedList(b, "Related decisions", rel.Decisions)
	writeRelatedList(b, "Trips that fit", rel.Trips)
	writeRelatedList(b, "Park guides", rel.Guides)
	b.WriteString(`</aside>`)
}

func writeRelatedList(b *bytes.Buffer, heading string, links []content.Link) {
	if len(links) == 0 {
		return
	}
	b.WriteString(`<h3>` + html.EscapeString(heading) + `</h3><ul>`)
	for _, l := range links {
		b.WriteString(`<li><a href="` + html.EscapeString(l.URL) + `">` + html.EscapeString(l.Title) + `</a></li>`)
	}
	b.WriteString(`</ul>`)
}

func writeCards(b *bytes.Buffer, cards []Card) {
	b.WriteString(`<ul class="card-list">`)
	for _, card := range cards {
		b.WriteString(`<li class="card">`)
		b.WriteString(`<h3><a href="` + html.EscapeString(card.URL) + `">` + html.EscapeString(card.Title) + `</a></h3>`)
		if card.Subtitle != "" {
			b.WriteString(`<p class="card-subtitle">` + html.EscapeString(card.Subtitle) + `</p>`)
		}
		if card.Summary != "" {
			b.WriteString(`<p>` + html.EscapeString(card.Summary) + `</p>`)
		}
		if card.Updated != "" {
			b.WriteString(`<p class="card-meta">Updated ` + html.EscapeString(FormatDate(card.Updated)) + `</p>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

// StatusPage renders newsletter confirm/unsubscribe outcomes.
func StatusPage(sh Shell, heading, message string) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<section class="status-page">`)
		b.WriteString(`<h1>` + html.EscapeString(heading) + `</h1>`)
		b.WriteString(`<p>` + html.EscapeString(message) + `</p>`)
		b.WriteString(`<p><a href="/">Back to the site</a></p>`)
		b.WriteString(`</section>`)
	})
}

// NotFound renders the 404 page.
func NotFound(sh Shell) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<section class="status-page"><h1>Page not found</h1>`)
		b.WriteString(`<p>Wrong turn at the last waterhole. Try the <a href="/decisions/">decisions index</a> or head <a href="/">home</a>.</p></section>`)
	})
}

// ServerError renders the 500 page.
func ServerError(sh Shell) templ.Component {
	return page(sh, func(b *bytes.Buffer) {
		b.WriteString(`<section class="status-page"><h1>Something broke</h1>`)
		b.WriteString(`<p>The vehicle is stuck in the sand. Please try again in a moment.</p></section>`)
	})
}
