package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/okavangolabs/sundowner/content"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsURL resolves a site-relative path against the configured base URL.
func AbsURL(cfg SiteConfig, rel string) string {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return rel
	}
	u.Path = path.Join(u.Path, rel)
	if strings.HasSuffix(rel, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FormatDate renders a YYYY-MM-DD date for display, falling back to
// the raw string when it does not parse.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("2 January 2006")
}

// ReadMinutes estimates reading time from a word count, never less
// than one minute.
func ReadMinutes(words int) int {
	const wordsPerMinute = 220
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// BucketLabel turns a bucket slug into its display label, "where-to-go"
// becomes "Where to go".
func BucketLabel(bucket string) string {
	label := strings.ReplaceAll(bucket, "-", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         buildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ArticleJsonLD returns a JSON-LD string for an Article schema.
func ArticleJsonLD(cfg SiteConfig, a content.Article, canonical string) string {
	data := map[string]interface{}{
		"@context":     "https://schema.org",
		"@type":        "Article",
		"headline":     a.Title,
		"description":  a.Summary,
		"dateModified": a.Updated,
		"url":          canonical,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   canonical,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if a.Hero != "" {
		data["image"] = AbsURL(cfg, a.Hero)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// QuestionJsonLD returns a JSON-LD string marking a decision page as
// the canonical answer to its topic question.
func QuestionJsonLD(cfg SiteConfig, question string, a content.Article, canonical string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "QAPage",
		"mainEntity": map[string]interface{}{
			"@type": "Question",
			"name":  question,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  a.Summary,
				"url":   canonical,
			},
		},
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
