// Package markup parses the restricted inline dialect used by authored
// catalog content. The dialect supports exactly two spans, bold runs
// (**text**) and links ([label](target)), inside otherwise plain text.
// Anything malformed degrades to plain text; parsing never fails and
// never drops input.
package markup

import "strings"

// Kind discriminates the segment variants produced by FormatInline.
type Kind int

const (
	KindText Kind = iota
	KindBold
	KindLink
)

// Segment is one typed run of a formatted paragraph. Text carries the
// literal text, the bold content, or the link label depending on Kind.
// URL and Internal are set only for KindLink.
type Segment struct {
	Kind     Kind
	Text     string
	URL      string
	Internal bool
}

// FormatInline scans one paragraph of authored text and returns its
// segments in source order. Delimiters that never complete (an opening
// ** without a closing **, a [ without the rest of a link) stay part of
// the surrounding plain text.
func FormatInline(s string) []Segment {
	var segs []Segment
	cursor := 0 // start of pending plain text
	pos := 0    // scan position, may sit past cursor after failed candidates
	for pos < len(s) {
		start, bold := nextCandidate(s, pos)
		if start < 0 {
			break
		}
		var seg Segment
		var end int
		var ok bool
		if bold {
			seg, end, ok = scanBold(s, start)
		} else {
			seg, end, ok = scanLink(s, start)
		}
		if !ok {
			pos = start + 1
			continue
		}
		if start > cursor {
			segs = append(segs, Segment{Kind: KindText, Text: s[cursor:start]})
		}
		segs = append(segs, seg)
		cursor, pos = end, end
	}
	if cursor < len(s) {
		segs = append(segs, Segment{Kind: KindText, Text: s[cursor:]})
	}
	return segs
}

// nextCandidate returns the position of the earliest span opener at or
// after from, preferring the bold opener when both start at the same
// index. Returns -1 when no opener remains.
func nextCandidate(s string, from int) (int, bool) {
	b := strings.Index(s[from:], "**")
	l := strings.IndexByte(s[from:], '[')
	switch {
	case b < 0 && l < 0:
		return -1, false
	case l < 0 || (b >= 0 && b <= l):
		return from + b, true
	default:
		return from + l, false
	}
}

// scanBold reads a bold span starting at the opening ** and closed by
// the nearest following **. The content may be empty.
func scanBold(s string, start int) (Segment, int, bool) {
	open := start + 2
	rel := strings.Index(s[open:], "**")
	if rel < 0 {
		return Segment{}, 0, false
	}
	return Segment{Kind: KindBold, Text: s[open : open+rel]}, open + rel + 2, true
}

// scanLink reads [label](target) starting at the opening bracket. The
// label runs to the first ] and the target to the first ); either may
// be empty. A target starting with "/" marks the link internal.
func scanLink(s string, start int) (Segment, int, bool) {
	rel := strings.IndexByte(s[start+1:], ']')
	if rel < 0 {
		return Segment{}, 0, false
	}
	labelEnd := start + 1 + rel
	if labelEnd+1 >= len(s) || s[labelEnd+1] != '(' {
		return Segment{}, 0, false
	}
	urlStart := labelEnd + 2
	rel = strings.IndexByte(s[urlStart:], ')')
	if rel < 0 {
		return Segment{}, 0, false
	}
	urlEnd := urlStart + rel
	target := s[urlStart:urlEnd]
	return Segment{
		Kind:     KindLink,
		Text:     s[start+1 : labelEnd],
		URL:      target,
		Internal: strings.HasPrefix(target, "/"),
	}, urlEnd + 1, true
}
