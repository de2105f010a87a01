package content

// Caps bounds how many related references of each type a page renders.
type Caps struct {
	Decisions int
	Trips     int
	Guides    int
}

// DefaultCaps is the editorial limit applied across the site.
var DefaultCaps = Caps{Decisions: 3, Trips: 2, Guides: 2}

// Link is a resolved, renderable related-content target.
type Link struct {
	Title string
	URL   string
}

// Related holds the resolved related links for one record, partitioned
// by type. Order within each list follows the author's reference order.
type Related struct {
	Decisions []Link
	Trips     []Link
	Guides    []Link
}

// Empty reports whether nothing resolved across all three lists.
// Templates skip the whole related block when true.
func (r Related) Empty() bool {
	return len(r.Decisions) == 0 && len(r.Trips) == 0 && len(r.Guides) == 0
}

// Resolver turns raw reference lists into bounded, resolved link sets.
type Resolver struct {
	registry *Registry
	topics   *TopicIndex
	caps     Caps
}

// NewResolver builds a resolver over the registry and topic index.
func NewResolver(reg *Registry, topics *TopicIndex, caps Caps) *Resolver {
	return &Resolver{registry: reg, topics: topics, caps: caps}
}

// Resolve caps each reference list first, then resolves what survived.
// Capping before resolution means a dangling reference inside the cap
// window is dropped without pulling a later reference into view, so a
// page never shows more than the cap but may show fewer. Dangling
// references resolve to nothing and are omitted silently; titles and
// targets always come from the resolved entity, never from the Ref.
func (r *Resolver) Resolve(a Article) Related {
	return Related{
		Decisions: r.resolveDecisions(capRefs(a.RelatedDecisions, r.caps.Decisions)),
		Trips:     r.resolveRecords(capRefs(a.RelatedTrips, r.caps.Trips)),
		Guides:    r.resolveRecords(capRefs(a.RelatedGuides, r.caps.Guides)),
	}
}

func capRefs(refs []Ref, n int) []Ref {
	if n < 0 {
		n = 0
	}
	if len(refs) > n {
		return refs[:n]
	}
	return refs
}

// resolveDecisions resolves through the topic index: the rendered title
// is the topic's question and the target is the decision page.
func (r *Resolver) resolveDecisions(refs []Ref) []Link {
	var out []Link
	for _, ref := range refs {
		tp, ok := r.topics.Lookup(ref.Key)
		if !ok {
			continue
		}
		out = append(out, Link{Title: tp.Question, URL: DecisionURL(tp)})
	}
	return out
}

// resolveRecords resolves through the registry. Unpublished targets
// still resolve, their pages exist for direct visits.
func (r *Resolver) resolveRecords(refs []Ref) []Link {
	var out []Link
	for _, ref := range refs {
		rec, ok := r.registry.Get(ref.Key)
		if !ok {
			continue
		}
		out = append(out, Link{Title: rec.Title, URL: RouteFor(rec, r.topics)})
	}
	return out
}
