package content

// Topic is one decision-page entry: the reader question a record
// answers and the bucket grouping it on listing pages. Slug doubles as
// the key of the record that answers the question.
type Topic struct {
	Slug     string
	Bucket   string
	Question string
}

// TopicIndex is the keyed lookup for decision topics. Buckets keep
// first-seen order and topics keep registration order inside a bucket,
// so listing pages are stable across restarts.
type TopicIndex struct {
	bySlug  map[string]Topic
	buckets []string
	grouped map[string][]Topic
}

// NewTopicIndex builds an index from the given topics.
func NewTopicIndex(topics ...Topic) *TopicIndex {
	idx := &TopicIndex{
		bySlug:  make(map[string]Topic),
		grouped: make(map[string][]Topic),
	}
	for _, tp := range topics {
		idx.Add(tp)
	}
	return idx
}

// Add registers a topic. Re-adding a slug replaces the stored topic in
// place; moving it to a new bucket appends it at that bucket's end.
func (t *TopicIndex) Add(tp Topic) {
	old, exists := t.bySlug[tp.Slug]
	t.bySlug[tp.Slug] = tp
	if exists {
		group := t.grouped[old.Bucket]
		for i, g := range group {
			if g.Slug != tp.Slug {
				continue
			}
			if old.Bucket == tp.Bucket {
				group[i] = tp
				return
			}
			t.grouped[old.Bucket] = append(group[:i], group[i+1:]...)
			break
		}
	}
	t.addToBucket(tp)
}

func (t *TopicIndex) addToBucket(tp Topic) {
	if _, ok := t.grouped[tp.Bucket]; !ok {
		t.buckets = append(t.buckets, tp.Bucket)
	}
	t.grouped[tp.Bucket] = append(t.grouped[tp.Bucket], tp)
}

// Lookup returns the topic for slug; the boolean is false on a miss.
func (t *TopicIndex) Lookup(slug string) (Topic, bool) {
	tp, ok := t.bySlug[slug]
	return tp, ok
}

// Buckets returns the bucket slugs in first-seen order.
func (t *TopicIndex) Buckets() []string {
	return t.buckets
}

// ByBucket returns the topics of one bucket in registration order.
func (t *TopicIndex) ByBucket(bucket string) []Topic {
	return t.grouped[bucket]
}

// Len returns the number of registered topics.
func (t *TopicIndex) Len() int { return len(t.bySlug) }
