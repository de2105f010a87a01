package sundowner

import (
	"encoding/xml"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okavangolabs/sundowner/content"
	"github.com/okavangolabs/sundowner/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// feedItems builds the RSS entries: published stories, newest first.
func feedItems(site views.SiteConfig, reg *content.Registry, topics *content.TopicIndex) []rssItem {
	stories := content.ByKind(reg, topics, content.KindStory)
	sort.SliceStable(stories, func(i, j int) bool { return stories[i].Updated > stories[j].Updated })

	items := make([]rssItem, 0, len(stories))
	for _, rec := range stories {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", rec.Updated); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		link := views.AbsURL(site, content.RouteFor(rec, topics))
		items = append(items, rssItem{
			Title:       rec.Title,
			Link:        link,
			Description: rec.Summary,
			PubDate:     pubDate,
			GUID:        link,
		})
	}
	return items
}

func (a *App) handleFeed(c echo.Context) error {
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        a.Config.URL,
			Description: a.Config.Description,
			Items:       feedItems(a.site, a.Registry, a.Topics),
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
