package markup

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRenderSectionParagraph(t *testing.T) {
	var buf bytes.Buffer
	RenderSection(&buf, "a **b** c")
	got := buf.String()
	want := "<p>a <strong>b</strong> c</p>"
	if got != want {
		t.Errorf("RenderSection = %q, want %q", got, want)
	}
}

func TestRenderSectionLinks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[park](/guides/serengeti/)", `<p><a href="/guides/serengeti/">park</a></p>`},
		{"[out](https://example.com)", `<p><a href="https://example.com" target="_blank" rel="noopener noreferrer">out</a></p>`},
		{"[](/x)", `<p><a href="/x"></a></p>`},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		RenderSection(&buf, tt.input)
		if got := buf.String(); got != tt.expected {
			t.Errorf("RenderSection(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderSectionUnsafeTarget(t *testing.T) {
	var buf bytes.Buffer
	RenderSection(&buf, "[click](javascript:alert(1))")
	got := buf.String()
	if strings.Contains(got, "<a ") {
		t.Errorf("unsafe target rendered as link: %q", got)
	}
	if !strings.Contains(got, "click") {
		t.Errorf("label dropped: %q", got)
	}
}

func TestRenderSectionEscapesHTML(t *testing.T) {
	var buf bytes.Buffer
	RenderSection(&buf, "a <script> **<b>** tag")
	got := buf.String()
	if strings.Contains(got, "<script>") || strings.Contains(got, "<b>") {
		t.Errorf("unescaped HTML in output: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped text: %q", got)
	}
}

func TestRenderSectionDefinitionList(t *testing.T) {
	var buf bytes.Buffer
	RenderSection(&buf, "**June.** dry season peak\n**November.** short rains")
	got := buf.String()
	if !strings.HasPrefix(got, `<ul class="fact-list">`) || !strings.HasSuffix(got, "</ul>") {
		t.Fatalf("expected a single list: %q", got)
	}
	if strings.Count(got, "<li>") != 2 {
		t.Errorf("expected 2 items: %q", got)
	}
	if !strings.Contains(got, "<strong>June.</strong>") {
		t.Errorf("expected bold label: %q", got)
	}
}

func TestSectionComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Section("hello **world**").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != "<p>hello <strong>world</strong></p>" {
		t.Errorf("Section component = %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/trips/okavango/", "/trips/okavango/"},
		{"#crossings", "#crossings"},
		{"https://example.com/a", "https://example.com/a"},
		{"mailto:hello@example.com", "mailto:hello@example.com"},
		{"javascript:alert(1)", ""},
		{"data:text/html,x", ""},
		{"relative/path", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"one two three", 3},
		{"some **bold** and [a link](/x)", 5},
		{"**When.** June to October\n**Where.** the north", 7},
		{"", 0},
	}
	for _, tt := range tests {
		if got := WordCount(tt.input); got != tt.expected {
			t.Errorf("WordCount(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
