package content

// RouteFor returns the canonical site path for a record. Topic
// membership wins over Kind: a record answering a decision question
// lives under /decisions/ even when it is a trip or a guide.
func RouteFor(a Article, topics *TopicIndex) string {
	if tp, ok := topics.Lookup(a.Key); ok {
		return DecisionURL(tp)
	}
	switch a.Kind {
	case KindTrip:
		return "/trips/" + a.Key + "/"
	case KindGuide:
		return "/guides/" + a.Key + "/"
	default:
		return "/stories/" + a.Key + "/"
	}
}

// DecisionURL returns the canonical path of a decision page.
func DecisionURL(tp Topic) string {
	return "/decisions/" + tp.Bucket + "/" + tp.Slug + "/"
}

// BucketURL returns the listing path of a decision bucket.
func BucketURL(bucket string) string {
	return "/decisions/" + bucket + "/"
}
