package markup

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Section returns a templ component that renders a section body as
// HTML. Rendering happens into a buffer so a partial write can never
// leak half-escaped output.
func Section(body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderSection(&buf, body)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Inline returns a templ component for a single formatted paragraph,
// without the surrounding block markup. Used for summaries and teasers.
func Inline(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		renderSegments(&buf, FormatInline(text))
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderSection writes the HTML for a section body to buf. Flowing
// paragraphs become <p>, definition-list blocks become <ul> with a
// <strong> label per labeled line.
func RenderSection(buf *bytes.Buffer, body string) {
	for _, b := range FormatSection(body) {
		if b.IsList() {
			buf.WriteString(`<ul class="fact-list">`)
			for _, ln := range b.Lines {
				buf.WriteString("<li>")
				if ln.Label != "" {
					buf.WriteString("<strong>")
					buf.WriteString(html.EscapeString(ln.Label))
					buf.WriteString("</strong>")
				}
				renderSegments(buf, ln.Rest)
				buf.WriteString("</li>")
			}
			buf.WriteString("</ul>")
			continue
		}
		buf.WriteString("<p>")
		renderSegments(buf, b.Segments)
		buf.WriteString("</p>")
	}
}

func renderSegments(buf *bytes.Buffer, segs []Segment) {
	for _, s := range segs {
		switch s.Kind {
		case KindBold:
			buf.WriteString("<strong>")
			buf.WriteString(html.EscapeString(s.Text))
			buf.WriteString("</strong>")
		case KindLink:
			href := SafeURL(s.URL)
			if href == "" {
				buf.WriteString(html.EscapeString(s.Text))
				continue
			}
			if s.Internal {
				buf.WriteString(`<a href="` + href + `">`)
			} else {
				buf.WriteString(`<a href="` + href + `" target="_blank" rel="noopener noreferrer">`)
			}
			buf.WriteString(html.EscapeString(s.Text))
			buf.WriteString("</a>")
		default:
			buf.WriteString(html.EscapeString(s.Text))
		}
	}
}

// SafeURL validates a link target for use in an href attribute and
// returns it attribute-escaped, or "" when the target is unsafe.
// Site-relative paths and fragments pass through; absolute URLs must
// carry an allowed scheme.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}

// WordCount counts whitespace-separated words across a set of section
// bodies, ignoring span delimiters so formatting does not inflate the
// estimate.
func WordCount(bodies ...string) int {
	n := 0
	for _, body := range bodies {
		for _, b := range FormatSection(body) {
			if b.IsList() {
				for _, ln := range b.Lines {
					n += len(strings.Fields(ln.Label))
					n += segmentWords(ln.Rest)
				}
				continue
			}
			n += segmentWords(b.Segments)
		}
	}
	return n
}

func segmentWords(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += len(strings.Fields(s.Text))
	}
	return n
}
