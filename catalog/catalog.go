// Package catalog is the authored editorial content of the Sundowner
// site: decision pages, stories, trip itineraries, and park guides,
// written in the inline dialect understood by the markup package.
// Everything here is code, there is no content database; a publish is
// a deploy.
package catalog

import "github.com/okavangolabs/sundowner/content"

// Load registers the full catalog and returns the registry and topic
// index the site serves from. Registration order is editorial order,
// listing pages preserve it.
func Load() (*content.Registry, *content.TopicIndex) {
	reg := content.NewRegistry()
	for _, group := range [][]content.Article{decisions, stories, trips, guides} {
		for _, a := range group {
			reg.Register(a)
		}
	}
	return reg, content.NewTopicIndex(topics...)
}
