package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/okavangolabs/sundowner/content"
	"github.com/okavangolabs/sundowner/subscribers"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func testShell() Shell {
	return Shell{
		Site: SiteConfig{
			Name:        "Sundowner",
			URL:         "https://sundowner.example.com",
			Description: "Safari planning without the brochure gloss.",
			Author:      "Okavango Labs",
		},
		Meta: PageMeta{Title: "Test page", URL: "https://sundowner.example.com/test/"},
	}
}

func TestPageShell(t *testing.T) {
	sh := testShell()
	sh.Readers = 1280
	got := render(t, StatusPage(sh, "Hello", "A test message."))

	for _, want := range []string{
		`<title>Test page · Sundowner</title>`,
		`<link rel="canonical" href="https://sundowner.example.com/test/">`,
		`<link rel="alternate" type="application/rss+xml"`,
		`class="brand" href="/">Sundowner</a>`,
		`Join 1280 readers`,
		`name="website" tabindex="-1"`,
		`action="/api/subscribe"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page shell missing %s", want)
		}
	}
}

func TestPageShellNoindex(t *testing.T) {
	sh := testShell()
	sh.Meta.Noindex = true
	got := render(t, StatusPage(sh, "Hidden", "Not for crawlers."))
	if !strings.Contains(got, `<meta name="robots" content="noindex">`) {
		t.Error("noindex meta tag missing")
	}
}

func TestPageShellEscapesJSONLD(t *testing.T) {
	sh := testShell()
	sh.JSONLD = []string{`{"name":"</script><script>alert(1)</script>"}`}
	got := render(t, StatusPage(sh, "X", "Y"))
	if strings.Contains(got, `alert(1)</script>"}`) {
		t.Error("JSON-LD payload can break out of its script tag")
	}
}

func TestArticlePage(t *testing.T) {
	pg := ArticlePage{
		Article: content.Article{
			Key:      "packing-for-your-first-safari",
			Kind:     content.KindStory,
			Title:    "Packing for your first safari",
			Subtitle: "What actually earns its place in the duffel.",
			Sections: []content.Section{
				{Name: "The duffel rule", Body: "Soft bags only. See the [Serengeti guide](/guides/serengeti/)."},
			},
			Published: true,
			Updated:   "2026-05-10",
		},
		Minutes: 3,
	}
	got := render(t, Article(testShell(), pg))

	for _, want := range []string{
		`<h1>Packing for your first safari</h1>`,
		`<p class="standfirst">What actually earns its place in the duffel.</p>`,
		`Updated 10 May 2026 · 3 min read`,
		`<h2>The duffel rule</h2>`,
		`<a href="/guides/serengeti/">Serengeti guide</a>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("article page missing %s", want)
		}
	}
	if strings.Contains(got, "Keep planning") {
		t.Error("related block rendered with nothing resolved")
	}
	if strings.Contains(got, "draft-flag") {
		t.Error("draft flag shown on a published record")
	}
}

func TestArticlePageDraftFlag(t *testing.T) {
	pg := ArticlePage{
		Article: content.Article{Title: "Night drive field notes", Updated: "2026-06-01"},
		Minutes: 1,
	}
	got := render(t, Article(testShell(), pg))
	if !strings.Contains(got, `<span class="draft-flag">Draft</span>`) {
		t.Error("draft flag missing on unpublished record")
	}
}

func TestArticlePageDecisionHeader(t *testing.T) {
	pg := ArticlePage{
		Article: content.Article{
			Key:       "best-time-serengeti",
			Kind:      content.KindStory,
			Title:     "Best time for the Serengeti",
			Published: true,
			Updated:   "2026-04-01",
		},
		Question: "When is the best time to visit the Serengeti?",
		Bucket:   "timing",
		Minutes:  4,
	}
	got := render(t, Article(testShell(), pg))
	if !strings.Contains(got, `<h1>When is the best time to visit the Serengeti?</h1>`) {
		t.Error("decision page should lead with the topic question")
	}
	if !strings.Contains(got, `<a href="/decisions/timing/">Timing</a>`) {
		t.Errorf("decision crumb missing bucket link:\n%s", got)
	}
	if strings.Contains(got, `<h1>Best time for the Serengeti</h1>`) {
		t.Error("decision page should not repeat the record title as h1")
	}
}

func TestArticlePageRelatedBlock(t *testing.T) {
	pg := ArticlePage{
		Article: content.Article{Title: "T", Published: true, Updated: "2026-01-01"},
		Related: content.Related{
			Decisions: []content.Link{{Title: "Kenya or Tanzania?", URL: "/decisions/where-to-go/kenya-or-tanzania/"}},
			Guides:    []content.Link{{Title: "Masai Mara", URL: "/guides/masai-mara/"}},
		},
		Minutes: 1,
	}
	got := render(t, Article(testShell(), pg))
	for _, want := range []string{
		`<h2>Keep planning</h2>`,
		`<h3>Related decisions</h3>`,
		`<a href="/decisions/where-to-go/kenya-or-tanzania/">Kenya or Tanzania?</a>`,
		`<h3>Park guides</h3>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("related block missing %s", want)
		}
	}
	if strings.Contains(got, "Trips that fit") {
		t.Error("empty trips list should not render a heading")
	}
}

func TestListingEmptyState(t *testing.T) {
	got := render(t, Listing(testShell(), "Stories", "Field notes.", nil))
	if !strings.Contains(got, "Nothing published here yet.") {
		t.Error("empty listing state missing")
	}
}

func TestHomeGroupsAndCards(t *testing.T) {
	groups := []DecisionGroup{
		{Bucket: "timing", Label: "Timing", Cards: []Card{
			{Title: "When is the best time to visit the Serengeti?", URL: "/decisions/timing/best-time-serengeti/"},
		}},
	}
	latest := []Card{
		{Title: "Packing for your first safari", URL: "/stories/packing-for-your-first-safari/", Updated: "2026-05-10"},
	}
	got := render(t, Home(testShell(), groups, latest))
	for _, want := range []string{
		`<h3><a href="/decisions/timing/">Timing</a></h3>`,
		`href="/decisions/timing/best-time-serengeti/"`,
		`href="/stories/packing-for-your-first-safari/"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("home page missing %s", want)
		}
	}
}

func TestOpsDashboardEscapesAndFilters(t *testing.T) {
	data := OpsDashboardData{
		Subs: []subscribers.Subscriber{
			{ID: 7, Email: `"><script>alert(1)</script>@example.com`, Status: subscribers.StatusConfirmed, Source: "footer"},
		},
		Counts: map[string]int{subscribers.StatusConfirmed: 1},
		Status: subscribers.StatusConfirmed,
		Query:  "alert",
		CSRF:   "tok123",
	}
	got := render(t, OpsDashboard(testShell(), data))
	if strings.Contains(got, "<script>alert(1)</script>") {
		t.Error("subscriber email rendered unescaped")
	}
	if !strings.Contains(got, `/ops/export.csv?q=alert&amp;status=confirmed`) {
		t.Errorf("export link should carry active filters:\n%s", got)
	}
	if !strings.Contains(got, `name="_csrf" value="tok123"`) {
		t.Error("csrf token missing from action forms")
	}
	if !strings.Contains(got, `action="/ops/subscribers/7/status/"`) {
		t.Error("status form action missing")
	}
}

func TestOpsLoginError(t *testing.T) {
	got := render(t, OpsLogin(testShell(), true, "tok"))
	if !strings.Contains(got, "Wrong key.") {
		t.Error("login error message missing")
	}
	if !strings.Contains(got, `type="password" name="key"`) {
		t.Error("key input missing")
	}
}

func TestNotFoundPage(t *testing.T) {
	got := render(t, NotFound(testShell()))
	if !strings.Contains(got, "Wrong turn") {
		t.Error("not-found copy missing")
	}
	if !strings.Contains(got, `href="/"`) {
		t.Error("not-found page should link home")
	}
}
