package catalog

import "github.com/okavangolabs/sundowner/content"

// topics maps reader questions to the records that answer them. The
// slug must match the key of a registered record; the bucket groups
// questions on /decisions/ listing pages in first-seen order.
var topics = []content.Topic{
	{Slug: "best-time-serengeti", Bucket: "timing", Question: "When is the best time to see the Serengeti migration?"},
	{Slug: "green-season-worth-it", Bucket: "timing", Question: "Is the green season worth booking?"},
	{Slug: "kenya-or-tanzania", Bucket: "where-to-go", Question: "Kenya or Tanzania for a first safari?"},
	{Slug: "safari-cost-per-day", Bucket: "budget", Question: "How much does a safari cost per day?"},
	{Slug: "self-drive-kruger", Bucket: "logistics", Question: "Should you self-drive Kruger or book a guided trip?"},
}
