package markup

import (
	"regexp"
	"strings"
)

var reDefLine = regexp.MustCompile(`^\*\*(.+?)\*\*(.*)$`)

// Line is one entry of a definition-list block: an optional bold label
// and the formatted remainder. Label is empty when the line did not
// open with a completed bold run.
type Line struct {
	Label string
	Rest  []Segment
}

// Block is one rendered unit of a section body. A block is either a
// flowing paragraph (Segments set) or a definition list (Lines set)
// when the paragraph opens with a bold run.
type Block struct {
	Segments []Segment
	Lines    []Line
}

// IsList reports whether the block renders as a definition list.
func (b Block) IsList() bool { return b.Lines != nil }

// SplitParagraphs splits a section body on blank lines, normalizing
// Windows line endings first and discarding paragraphs that are empty
// after trimming.
func SplitParagraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var out []string
	for _, p := range strings.Split(body, "\n\n") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FormatSection turns a section body into renderable blocks. A
// paragraph whose trimmed text begins with ** becomes a definition
// list, one Line per physical line; every other paragraph flows.
func FormatSection(body string) []Block {
	paras := SplitParagraphs(body)
	blocks := make([]Block, 0, len(paras))
	for _, p := range paras {
		if strings.HasPrefix(p, "**") {
			blocks = append(blocks, Block{Lines: formatList(p)})
			continue
		}
		blocks = append(blocks, Block{Segments: FormatInline(p)})
	}
	return blocks
}

func formatList(p string) []Line {
	rawLines := strings.Split(p, "\n")
	lines := make([]Line, 0, len(rawLines))
	for _, l := range rawLines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if m := reDefLine.FindStringSubmatch(l); m != nil {
			lines = append(lines, Line{Label: m[1], Rest: FormatInline(m[2])})
			continue
		}
		lines = append(lines, Line{Rest: FormatInline(l)})
	}
	return lines
}
