package sundowner

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/okavangolabs/sundowner/content"
	"github.com/okavangolabs/sundowner/markup"
	"github.com/okavangolabs/sundowner/subscribers"
	"github.com/okavangolabs/sundowner/views"
)

// shell assembles the common page chrome: site config, per-page meta,
// active nav section, and the cached subscriber count for the signup box.
func (a *App) shell(meta views.PageMeta, active string) views.Shell {
	sh := views.Shell{
		Site:   a.site,
		Meta:   meta,
		Active: active,
	}
	if a.Counts != nil {
		if n, err := a.Counts.Count(); err == nil {
			sh.Readers = n
		}
	}
	return sh
}

func (a *App) handleHome(c echo.Context) error {
	sh := a.shell(views.PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         views.AbsURL(a.site, "/"),
	}, "")
	sh.JSONLD = []string{views.WebsiteJsonLD(a.site)}

	latest := content.ByKind(a.Registry, a.Topics, content.KindStory)
	sort.SliceStable(latest, func(i, j int) bool { return latest[i].Updated > latest[j].Updated })
	if len(latest) > 5 {
		latest = latest[:5]
	}

	return Render(c, views.Home(sh, a.decisionGroups(), a.cardsFor(latest)))
}

// decisionGroups builds the bucket -> answered-questions structure used
// on the home page and the decisions index.
func (a *App) decisionGroups() []views.DecisionGroup {
	var groups []views.DecisionGroup
	for _, bucket := range a.Topics.Buckets() {
		entries := content.DecisionEntries(a.Registry, a.Topics, bucket)
		if len(entries) == 0 {
			continue
		}
		cards := make([]views.Card, 0, len(entries))
		for _, e := range entries {
			cards = append(cards, views.Card{
				Title:   e.Topic.Question,
				Summary: e.Article.Summary,
				URL:     content.DecisionURL(e.Topic),
				Updated: e.Article.Updated,
			})
		}
		groups = append(groups, views.DecisionGroup{
			Bucket: bucket,
			Label:  views.BucketLabel(bucket),
			Cards:  cards,
		})
	}
	return groups
}

func (a *App) cardsFor(records []content.Article) []views.Card {
	cards := make([]views.Card, 0, len(records))
	for _, rec := range records {
		cards = append(cards, views.Card{
			Title:    rec.Title,
			Subtitle: rec.Subtitle,
			Summary:  rec.Summary,
			URL:      content.RouteFor(rec, a.Topics),
			Updated:  rec.Updated,
		})
	}
	return cards
}

func (a *App) handleListing(c echo.Context, kind content.Kind, active, heading, intro string) error {
	records := content.ByKind(a.Registry, a.Topics, kind)
	sort.SliceStable(records, func(i, j int) bool { return records[i].Updated > records[j].Updated })
	sh := a.shell(views.PageMeta{
		Title:       heading,
		Description: intro,
		URL:         views.AbsURL(a.site, "/"+active+"/"),
	}, active)
	return Render(c, views.Listing(sh, heading, intro, a.cardsFor(records)))
}

func (a *App) handleStories(c echo.Context) error {
	return a.handleListing(c, content.KindStory, "stories",
		"Stories", "Field notes and planning pieces from the road.")
}

func (a *App) handleTrips(c echo.Context) error {
	return a.handleListing(c, content.KindTrip, "trips",
		"Trips", "Itineraries we would book again, day by day.")
}

func (a *App) handleGuides(c echo.Context) error {
	return a.handleListing(c, content.KindGuide, "guides",
		"Park guides", "What each park is actually like, and who it suits.")
}

func (a *App) handleStory(c echo.Context) error {
	return a.handleRecord(c, c.Param("slug"), "stories")
}

func (a *App) handleTrip(c echo.Context) error {
	return a.handleRecord(c, c.Param("slug"), "trips")
}

func (a *App) handleGuide(c echo.Context) error {
	return a.handleRecord(c, c.Param("slug"), "guides")
}

// handleRecord serves a record page under a section prefix. A record
// reached under the wrong prefix redirects to its canonical route, so
// every record has exactly one indexable URL.
func (a *App) handleRecord(c echo.Context, slug, active string) error {
	rec, ok := a.Registry.Get(slug)
	if !ok {
		return echo.ErrNotFound
	}
	canonical := content.RouteFor(rec, a.Topics)
	if c.Request().URL.Path != canonical {
		return c.Redirect(http.StatusMovedPermanently, canonical)
	}
	return a.renderArticle(c, rec, content.Topic{}, active)
}

func (a *App) handleDecisions(c echo.Context) error {
	sh := a.shell(views.PageMeta{
		Title:       "Decisions",
		Description: "The questions that shape a safari, answered one page at a time.",
		URL:         views.AbsURL(a.site, "/decisions/"),
	}, "decisions")
	return Render(c, views.DecisionsIndex(sh, a.decisionGroups()))
}

func (a *App) handleBucket(c echo.Context) error {
	bucket := c.Param("bucket")
	if len(a.Topics.ByBucket(bucket)) == 0 {
		return echo.ErrNotFound
	}
	entries := content.DecisionEntries(a.Registry, a.Topics, bucket)
	cards := make([]views.Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, views.Card{
			Title:   e.Topic.Question,
			Summary: e.Article.Summary,
			URL:     content.DecisionURL(e.Topic),
			Updated: e.Article.Updated,
		})
	}
	label := views.BucketLabel(bucket)
	sh := a.shell(views.PageMeta{
		Title:       label,
		Description: "Decision pages in the " + label + " bucket.",
		URL:         views.AbsURL(a.site, content.BucketURL(bucket)),
	}, "decisions")
	return Render(c, views.Listing(sh, label, "", cards))
}

func (a *App) handleDecision(c echo.Context) error {
	bucket := c.Param("bucket")
	slug := c.Param("slug")
	topic, ok := a.Topics.Lookup(slug)
	if !ok || topic.Bucket != bucket {
		return echo.ErrNotFound
	}
	rec, ok := a.Registry.Get(slug)
	if !ok {
		return echo.ErrNotFound
	}
	return a.renderArticle(c, rec, topic, "decisions")
}

// renderArticle serves a full record page. Unpublished records render
// with a noindex meta and a draft flag; they never appear in listings.
func (a *App) renderArticle(c echo.Context, rec content.Article, topic content.Topic, active string) error {
	canonical := views.AbsURL(a.site, content.RouteFor(rec, a.Topics))
	meta := views.PageMeta{
		Title:       rec.Title,
		Description: rec.Summary,
		URL:         canonical,
		OGType:      "article",
		Noindex:     !rec.Published,
	}
	if rec.Hero != "" {
		meta.Image = views.AbsURL(a.site, rec.Hero)
	}
	sh := a.shell(meta, active)
	sh.JSONLD = []string{views.ArticleJsonLD(a.site, rec, canonical)}
	if topic.Question != "" {
		sh.JSONLD = append(sh.JSONLD, views.QuestionJsonLD(a.site, topic.Question, rec, canonical))
	}

	bodies := make([]string, 0, len(rec.Sections))
	for _, sec := range rec.Sections {
		bodies = append(bodies, sec.Body)
	}

	return Render(c, views.Article(sh, views.ArticlePage{
		Article:  rec,
		Question: topic.Question,
		Bucket:   topic.Bucket,
		Related:  a.Resolver.Resolve(rec),
		Minutes:  views.ReadMinutes(markup.WordCount(bodies...)),
	}))
}

func (a *App) handleConfirm(c echo.Context) error {
	sub, err := a.Subs.Confirm(c.Param("token"))
	if err != nil {
		if err == subscribers.ErrNotFound {
			sh := a.shell(views.PageMeta{Title: "Link not recognized", Noindex: true}, "")
			return RenderStatus(c, http.StatusNotFound, views.StatusPage(sh,
				"That link did not work", "It may have been replaced by a newer email. Sign up again below and use the latest one."))
		}
		return err
	}
	a.Counts.Invalidate()
	sh := a.shell(views.PageMeta{Title: "Subscription confirmed", Noindex: true}, "")
	return Render(c, views.StatusPage(sh,
		"You are on the list", "The next dispatch goes to "+sub.Email+". Until then, the archive below is all yours."))
}

func (a *App) handleUnsubscribe(c echo.Context) error {
	_, err := a.Subs.Unsubscribe(c.Param("token"))
	if err != nil {
		if err == subscribers.ErrNotFound {
			sh := a.shell(views.PageMeta{Title: "Link not recognized", Noindex: true}, "")
			return RenderStatus(c, http.StatusNotFound, views.StatusPage(sh,
				"That link did not work", "The address may already be off the list."))
		}
		return err
	}
	a.Counts.Invalidate()
	sh := a.shell(views.PageMeta{Title: "Unsubscribed", Noindex: true}, "")
	return Render(c, views.StatusPage(sh,
		"You are off the list", "No hard feelings. The site stays open either way."))
}

func (a *App) handleFavicon(c echo.Context) error {
	data, err := Assets.ReadFile("assets/favicon.svg")
	if err != nil {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nDisallow: /ops/\n\nSitemap: " + views.AbsURL(a.site, "/sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.shell(views.PageMeta{Title: "Page not found", Noindex: true}, "")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.shell(views.PageMeta{Title: "Something broke", Noindex: true}, "")))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
