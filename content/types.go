// Package content holds the typed editorial model behind the site: the
// record registry, the decision-topic index, canonical routing, and the
// related-content resolver. Records are authored in code and registered
// once at boot; the registry is read-only for the life of the process.
package content

// Kind classifies a record for routing and section listings.
type Kind string

const (
	KindStory Kind = "story"
	KindTrip  Kind = "trip"
	KindGuide Kind = "guide"
)

// LinkType classifies a related-content reference.
type LinkType string

const (
	LinkDecision LinkType = "decision"
	LinkTrip     LinkType = "trip"
	LinkGuide    LinkType = "guide"
)

// Ref is a lightweight pointer to another entity. It carries a key and
// an author-supplied display title but no content; resolution happens
// through the Registry or TopicIndex at render time, so a Ref is never
// a source of truth for the target's title.
type Ref struct {
	Key   string
	Title string
	Type  LinkType
}

// Section is one named block of body text in the authored dialect.
// Order matters: sections render top to bottom as authored.
type Section struct {
	Name string
	Body string
}

// Article is one authored record: a story, a trip itinerary, or a park
// guide. Records answering a decision-topic question are routed under
// /decisions/ regardless of Kind.
type Article struct {
	Key       string
	Kind      Kind
	Title     string
	Subtitle  string
	Summary   string
	Hero      string
	Sections  []Section
	Published bool
	Updated   string // YYYY-MM-DD

	RelatedDecisions []Ref
	RelatedTrips     []Ref
	RelatedGuides    []Ref
}
