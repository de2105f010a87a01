package sundowner

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okavangolabs/sundowner/content"
	"github.com/okavangolabs/sundowner/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapURLs lists every indexable page: home, the section indexes,
// bucket pages with at least one published decision, and published
// records at their canonical routes. Unpublished records stay out even
// though their direct URLs resolve.
func sitemapURLs(site views.SiteConfig, reg *content.Registry, topics *content.TopicIndex) []sitemapURL {
	urls := []sitemapURL{
		{Loc: views.AbsURL(site, "/")},
		{Loc: views.AbsURL(site, "/stories/")},
		{Loc: views.AbsURL(site, "/decisions/")},
		{Loc: views.AbsURL(site, "/trips/")},
		{Loc: views.AbsURL(site, "/guides/")},
	}
	for _, bucket := range topics.Buckets() {
		if len(content.DecisionEntries(reg, topics, bucket)) == 0 {
			continue
		}
		urls = append(urls, sitemapURL{Loc: views.AbsURL(site, content.BucketURL(bucket))})
	}
	for _, rec := range content.Published(reg.All()) {
		urls = append(urls, sitemapURL{
			Loc:     views.AbsURL(site, content.RouteFor(rec, topics)),
			LastMod: rec.Updated,
		})
	}
	return urls
}

func (a *App) handleSitemap(c echo.Context) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  sitemapURLs(a.site, a.Registry, a.Topics),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
