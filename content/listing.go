package content

// Published filters records down to the published ones, preserving
// order.
func Published(records []Article) []Article {
	out := make([]Article, 0, len(records))
	for _, a := range records {
		if a.Published {
			out = append(out, a)
		}
	}
	return out
}

// ByKind returns the published records of one kind in registration
// order, skipping records that canonically route to a decision page so
// a record never appears in two section listings.
func ByKind(reg *Registry, topics *TopicIndex, k Kind) []Article {
	var out []Article
	for _, a := range reg.All() {
		if !a.Published || a.Kind != k {
			continue
		}
		if _, ok := topics.Lookup(a.Key); ok {
			continue
		}
		out = append(out, a)
	}
	return out
}

// DecisionEntry joins a topic with the published record answering it.
type DecisionEntry struct {
	Topic   Topic
	Article Article
}

// DecisionEntries returns the answered topics of one bucket in topic
// order. Topics whose record is missing or unpublished are skipped, a
// dangling topic never breaks a listing page.
func DecisionEntries(reg *Registry, topics *TopicIndex, bucket string) []DecisionEntry {
	var out []DecisionEntry
	for _, tp := range topics.ByBucket(bucket) {
		rec, ok := reg.Get(tp.Slug)
		if !ok || !rec.Published {
			continue
		}
		out = append(out, DecisionEntry{Topic: tp, Article: rec})
	}
	return out
}
