package sundowner

import (
	"testing"

	"github.com/okavangolabs/sundowner/catalog"
	"github.com/okavangolabs/sundowner/content"
	"github.com/okavangolabs/sundowner/views"
)

func TestSitemapURLs(t *testing.T) {
	reg, topics := catalog.Load()
	site := views.SiteConfig{URL: "https://sundowner.example.com"}

	urls := sitemapURLs(site, reg, topics)
	locs := make(map[string]string, len(urls))
	for _, u := range urls {
		if _, dup := locs[u.Loc]; dup {
			t.Errorf("duplicate sitemap entry %s", u.Loc)
		}
		locs[u.Loc] = u.LastMod
	}

	for _, want := range []string{
		"https://sundowner.example.com/",
		"https://sundowner.example.com/stories/",
		"https://sundowner.example.com/decisions/",
		"https://sundowner.example.com/trips/",
		"https://sundowner.example.com/guides/",
	} {
		if _, ok := locs[want]; !ok {
			t.Errorf("sitemap missing %s", want)
		}
	}

	for _, rec := range content.Published(reg.All()) {
		loc := views.AbsURL(site, content.RouteFor(rec, topics))
		lastmod, ok := locs[loc]
		if !ok {
			t.Errorf("sitemap missing published record %s at %s", rec.Key, loc)
			continue
		}
		if lastmod != rec.Updated {
			t.Errorf("lastmod for %s = %q, want %q", rec.Key, lastmod, rec.Updated)
		}
	}
}

func TestSitemapExcludesUnpublished(t *testing.T) {
	reg, topics := catalog.Load()
	site := views.SiteConfig{URL: "https://sundowner.example.com"}

	urls := sitemapURLs(site, reg, topics)
	locs := make(map[string]bool, len(urls))
	for _, u := range urls {
		locs[u.Loc] = true
	}

	sawUnpublished := false
	for _, rec := range reg.All() {
		if rec.Published {
			continue
		}
		sawUnpublished = true
		loc := views.AbsURL(site, content.RouteFor(rec, topics))
		if locs[loc] {
			t.Errorf("unpublished record %s listed in sitemap", rec.Key)
		}
	}
	if !sawUnpublished {
		t.Fatal("catalog should carry at least one unpublished record for this test")
	}
}
