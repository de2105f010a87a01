package content

import "testing"

func listingWorld() (*Registry, *TopicIndex) {
	reg := NewRegistry()
	reg.Register(Article{Key: "story-1", Kind: KindStory, Published: true})
	reg.Register(Article{Key: "story-draft", Kind: KindStory, Published: false})
	reg.Register(Article{Key: "answered-story", Kind: KindStory, Published: true})
	reg.Register(Article{Key: "trip-1", Kind: KindTrip, Published: true})
	topics := NewTopicIndex(
		Topic{Slug: "answered-story", Bucket: "timing", Question: "Q?"},
		Topic{Slug: "dangling-topic", Bucket: "timing", Question: "Gone?"},
		Topic{Slug: "draft-topic", Bucket: "budget", Question: "Draft?"},
	)
	reg.Register(Article{Key: "draft-topic", Kind: KindStory, Published: false})
	return reg, topics
}

func TestPublished(t *testing.T) {
	reg, _ := listingWorld()
	pub := Published(reg.All())
	for _, a := range pub {
		if !a.Published {
			t.Errorf("Published kept %q", a.Key)
		}
	}
	if len(pub) != 3 {
		t.Errorf("Published = %d records, want 3", len(pub))
	}
}

func TestByKindSkipsTopicBackedRecords(t *testing.T) {
	reg, topics := listingWorld()
	stories := ByKind(reg, topics, KindStory)
	if len(stories) != 1 || stories[0].Key != "story-1" {
		t.Errorf("ByKind(story) = %v, want only story-1", keysOf(stories))
	}
	trips := ByKind(reg, topics, KindTrip)
	if len(trips) != 1 || trips[0].Key != "trip-1" {
		t.Errorf("ByKind(trip) = %v, want only trip-1", keysOf(trips))
	}
}

func TestDecisionEntries(t *testing.T) {
	reg, topics := listingWorld()
	entries := DecisionEntries(reg, topics, "timing")
	if len(entries) != 1 {
		t.Fatalf("DecisionEntries(timing) = %d entries, want 1", len(entries))
	}
	if entries[0].Topic.Slug != "answered-story" {
		t.Errorf("entry = %q, want answered-story", entries[0].Topic.Slug)
	}
}

func TestDecisionEntriesSkipUnpublished(t *testing.T) {
	reg, topics := listingWorld()
	if entries := DecisionEntries(reg, topics, "budget"); len(entries) != 0 {
		t.Errorf("DecisionEntries(budget) = %v, want none for unpublished record", entries)
	}
}
