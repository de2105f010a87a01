// Package views renders every page of the site as templ components
// built from plain Go. Components write into a buffer first so a
// template bug can never leak a half-rendered page.
package views

import (
	"github.com/okavangolabs/sundowner/content"
)

// SiteConfig holds site-wide settings populated from environment
// variables. Every page receives it so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Sundowner")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image, absolute
	OGType      string // "website" or "article"
	Noindex     bool   // drafts stay reachable but unindexed
}

// Shell is everything the page frame needs around the body: site
// settings, head metadata, the active nav section, and the confirmed
// reader count for the newsletter box (0 hides the count line).
type Shell struct {
	Site    SiteConfig
	Meta    PageMeta
	Active  string
	Readers int
	JSONLD  []string
}

// Card is the list-item projection of a record used on listing pages.
type Card struct {
	Title    string
	Subtitle string
	Summary  string
	URL      string
	Updated  string
}

// ArticlePage is the article template's view model. Question and
// Bucket are set only when the record renders as a decision page.
type ArticlePage struct {
	Article  content.Article
	Question string
	Bucket   string
	Related  content.Related
	Minutes  int
}

// DecisionGroup is one bucket's worth of answered questions on the
// decisions index.
type DecisionGroup struct {
	Bucket string
	Label  string
	Cards  []Card
}
