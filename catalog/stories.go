package catalog

import "github.com/okavangolabs/sundowner/content"

var stories = []content.Article{
	{
		Key:       "packing-for-your-first-safari",
		Kind:      content.KindStory,
		Title:     "Packing for your first safari",
		Subtitle:  "Soft bag, neutral colours, fewer things than you think",
		Summary:   "Safari packing lists run long because nobody wants to be blamed for the missing headlamp. Here is the short version that survives contact with a bush plane.",
		Published: true,
		Updated:   "2026-05-09",
		Sections: []content.Section{
			{
				Name: "The rules that matter",
				Body: "Bush planes enforce a **soft-sided bag** and a weight limit, usually 15 kg " +
					"including hand luggage. Everything else follows from that. Camps do laundry, " +
					"often same-day, so three changes of clothes covers a two-week trip.\n\n" +
					"Colour matters less than the brochures claim, but avoid dark blue and black " +
					"where tsetse flies live, they are drawn to it, and avoid white because the dust " +
					"wins. Khaki is tradition, anything muted works.",
			},
			{
				Name: "The short list",
				Body: "**Binoculars.** One pair per person, not per couple. The single biggest " +
					"upgrade to a safari under $300.\n" +
					"**Fleece and beanie.** Open vehicles before dawn are properly cold, even in " +
					"[peak season](/decisions/timing/best-time-serengeti/).\n" +
					"**Headlamp.** Camps go dark; hands-free light beats a phone.\n" +
					"**Chargers and a power bank.** Many tents have no sockets, vehicles usually do.\n" +
					"**Paper copies.** Passport, insurance, prescriptions. Phones die in the dust.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "best-time-serengeti", Title: "When to go", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "northern-circuit-classic", Title: "Northern circuit", Type: content.LinkTrip},
		},
	},
	{
		Key:       "what-sundowner-means",
		Kind:      content.KindStory,
		Title:     "What a sundowner actually is",
		Subtitle:  "The hour the safari day is built around",
		Summary:   "The drink at dusk is the oldest ritual in the safari book, and the name of this site. A short history of stopping the vehicle at six o'clock.",
		Published: true,
		Updated:   "2025-08-14",
		Sections: []content.Section{
			{
				Name: "The ritual",
				Body: "Around six the light goes gold, the guide finds a rise with a view and no " +
					"lions, and a table appears from somewhere in the vehicle. Gin and tonic is " +
					"traditional, the tonic having once carried the quinine. Nobody hurries. The " +
					"afternoon drive is planned backwards from this stop, which tells you most of " +
					"what you need to know about safari priorities.\n\n" +
					"We named the site after the hour because it is the part people remember after " +
					"the photographs blur together: the engine off, the heat lifting, the first " +
					"hyena whooping somewhere east.",
			},
		},
	},
	{
		Key:       "night-drive-field-notes",
		Kind:      content.KindStory,
		Title:     "Field notes from the night drives",
		Subtitle:  "What the spotlight actually finds",
		Summary:   "Draft notes from a week of night drives in the private reserves, being edited for publication.",
		Published: false,
		Updated:   "2026-08-02",
		Sections: []content.Section{
			{
				Name: "Draft",
				Body: "Genets in the sausage tree at the dinner table again. The spotlight etiquette " +
					"question keeps coming up, red filters, no lights on hunting cats, and deserves " +
					"its own piece alongside [the Kruger question](/decisions/logistics/self-drive-kruger/).",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "self-drive-kruger", Title: "Self-drive Kruger", Type: content.LinkDecision},
		},
		RelatedGuides: []content.Ref{
			{Key: "kruger", Title: "Kruger", Type: content.LinkGuide},
		},
	},
}
