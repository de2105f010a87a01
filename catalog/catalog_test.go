package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/okavangolabs/sundowner/content"
	"github.com/okavangolabs/sundowner/markup"
)

func TestCatalogKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, group := range [][]content.Article{decisions, stories, trips, guides} {
		for _, a := range group {
			if seen[a.Key] {
				t.Errorf("duplicate key %q", a.Key)
			}
			seen[a.Key] = true
		}
	}
}

func TestTopicsHaveRecords(t *testing.T) {
	reg, topicIdx := Load()
	for _, bucket := range topicIdx.Buckets() {
		for _, tp := range topicIdx.ByBucket(bucket) {
			rec, ok := reg.Get(tp.Slug)
			if !ok {
				t.Errorf("topic %q has no record", tp.Slug)
				continue
			}
			if !rec.Published {
				t.Errorf("topic %q points at unpublished record", tp.Slug)
			}
		}
	}
}

func TestRefsResolve(t *testing.T) {
	reg, topicIdx := Load()
	for _, a := range reg.All() {
		for _, ref := range a.RelatedDecisions {
			if _, ok := topicIdx.Lookup(ref.Key); !ok {
				t.Errorf("%s: decision ref %q has no topic", a.Key, ref.Key)
			}
		}
		for _, ref := range a.RelatedTrips {
			rec, ok := reg.Get(ref.Key)
			if !ok {
				t.Errorf("%s: trip ref %q has no record", a.Key, ref.Key)
				continue
			}
			if rec.Kind != content.KindTrip {
				t.Errorf("%s: trip ref %q resolves to a %s", a.Key, ref.Key, rec.Kind)
			}
		}
		for _, ref := range a.RelatedGuides {
			rec, ok := reg.Get(ref.Key)
			if !ok {
				t.Errorf("%s: guide ref %q has no record", a.Key, ref.Key)
				continue
			}
			if rec.Kind != content.KindGuide {
				t.Errorf("%s: guide ref %q resolves to a %s", a.Key, ref.Key, rec.Kind)
			}
		}
	}
}

func TestInternalBodyLinksResolve(t *testing.T) {
	reg, topicIdx := Load()
	valid := map[string]bool{
		"/": true, "/stories/": true, "/decisions/": true, "/trips/": true, "/guides/": true,
	}
	for _, a := range reg.All() {
		valid[content.RouteFor(a, topicIdx)] = true
	}
	for _, b := range topicIdx.Buckets() {
		valid[content.BucketURL(b)] = true
	}
	for _, a := range reg.All() {
		for _, sec := range a.Sections {
			for _, link := range internalLinks(sec.Body) {
				if !valid[link] {
					t.Errorf("%s/%s: internal link %q does not resolve", a.Key, sec.Name, link)
				}
			}
		}
	}
}

func internalLinks(body string) []string {
	var out []string
	for _, block := range markup.FormatSection(body) {
		segs := block.Segments
		for _, ln := range block.Lines {
			segs = append(segs, ln.Rest...)
		}
		for _, s := range segs {
			if s.Kind == markup.KindLink && s.Internal && !strings.HasPrefix(s.URL, "/public/") {
				out = append(out, s.URL)
			}
		}
	}
	return out
}

func TestPublishedRecordsComplete(t *testing.T) {
	reg, _ := Load()
	for _, a := range content.Published(reg.All()) {
		if a.Title == "" || a.Summary == "" {
			t.Errorf("%s: missing title or summary", a.Key)
		}
		if len(a.Sections) == 0 {
			t.Errorf("%s: no sections", a.Key)
		}
		if _, err := time.Parse("2006-01-02", a.Updated); err != nil {
			t.Errorf("%s: bad updated date %q", a.Key, a.Updated)
		}
		for _, sec := range a.Sections {
			if sec.Name == "" || strings.TrimSpace(sec.Body) == "" {
				t.Errorf("%s: empty section", a.Key)
			}
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	reg1, _ := Load()
	reg2, _ := Load()
	if reg1.Len() != reg2.Len() {
		t.Errorf("Load not stable: %d vs %d records", reg1.Len(), reg2.Len())
	}
	all1, all2 := reg1.All(), reg2.All()
	for i := range all1 {
		if all1[i].Key != all2[i].Key {
			t.Fatalf("Load order not stable at %d: %q vs %q", i, all1[i].Key, all2[i].Key)
		}
	}
}
