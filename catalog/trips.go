package catalog

import "github.com/okavangolabs/sundowner/content"

var trips = []content.Article{
	{
		Key:       "northern-circuit-classic",
		Kind:      content.KindTrip,
		Title:     "The classic northern circuit",
		Subtitle:  "Tarangire, Ngorongoro, Serengeti in eight days",
		Summary:   "Tanzania's northern circuit is the default first safari for a reason: three very different parks on one road, ending in the Serengeti with time to let it breathe.",
		Hero:      "/public/img/ngorongoro-rim.jpg",
		Published: true,
		Updated:   "2026-03-27",
		Sections: []content.Section{
			{
				Name: "The shape of it",
				Body: "**Days 1 to 2.** Tarangire. Baobabs and the densest elephant population on " +
					"the circuit. A gentler warm-up than driving straight into the crowds.\n" +
					"**Day 3.** The Ngorongoro Crater at dawn, then over the rim.\n" +
					"**Days 4 to 7.** The [Serengeti](/guides/serengeti/), positioned wherever the " +
					"herds are in your month.\n" +
					"**Day 8.** Fly back from a bush strip instead of repeating the road.",
			},
			{
				Name: "Why it works",
				Body: "The circuit front-loads variety and saves scale for last. By the time you " +
					"reach the long grass of the Serengeti you can read a sighting, and four nights " +
					"gives the park room to produce rather than demanding it perform on a schedule. " +
					"Season strategy is covered in [the migration timing piece](/decisions/timing/best-time-serengeti/); " +
					"the honest budget for a private version of this trip sits in the $500 to $900 " +
					"band of [the cost breakdown](/decisions/budget/safari-cost-per-day/).",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "best-time-serengeti", Title: "Migration timing", Type: content.LinkDecision},
			{Key: "kenya-or-tanzania", Title: "Kenya or Tanzania", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "mara-long-weekend", Title: "Mara long weekend", Type: content.LinkTrip},
		},
		RelatedGuides: []content.Ref{
			{Key: "serengeti", Title: "Serengeti", Type: content.LinkGuide},
		},
	},
	{
		Key:       "mara-long-weekend",
		Kind:      content.KindTrip,
		Title:     "A long weekend in the Masai Mara",
		Subtitle:  "Four nights, one airstrip, maximum cat time",
		Summary:   "The Mara is the best short safari in Africa: forty-five minutes from Nairobi by Caravan and straight into lion country before lunch.",
		Published: true,
		Updated:   "2026-01-15",
		Sections: []content.Section{
			{
				Name: "The shape of it",
				Body: "Fly Wilson to a Mara strip on the morning shuttle, game drive from the " +
					"airstrip to camp, and you have banked a full afternoon drive on day one. Four " +
					"nights buys eight drives, enough for the [Mara's](/guides/masai-mara/) big-cat " +
					"dynasties to show you an actual story rather than a portrait.\n\n" +
					"Choose a conservancy camp on the Mara's edge if the budget allows. Vehicle " +
					"caps at sightings and night drives are the difference the " +
					"[per-day price](/decisions/budget/safari-cost-per-day/) is buying.",
			},
			{
				Name: "When",
				Body: "Any month works for cats. August to October adds the crossings, and the " +
					"crowds that follow them; the choice between this and the longer Tanzanian " +
					"version is [its own question](/decisions/where-to-go/kenya-or-tanzania/).",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "kenya-or-tanzania", Title: "Kenya or Tanzania", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "northern-circuit-classic", Title: "Northern circuit", Type: content.LinkTrip},
		},
		RelatedGuides: []content.Ref{
			{Key: "masai-mara", Title: "Masai Mara", Type: content.LinkGuide},
		},
	},
	{
		Key:       "okavango-mobile",
		Kind:      content.KindTrip,
		Title:     "Okavango by mobile camp",
		Subtitle:  "Six days moving through the delta under canvas",
		Summary:   "A mobile safari trades the lodge pool for a camp that moves with you: the delta at water level by mokoro, and a different island every second night.",
		Hero:      "/public/img/mokoro-channel.jpg",
		Published: true,
		Updated:   "2025-09-30",
		Sections: []content.Section{
			{
				Name: "The shape of it",
				Body: "Six days, three camps, moving by boat and 4x4 between them. Mornings split " +
					"between mokoro channels and walking the islands with an armed guide; " +
					"elephants decide the afternoon schedule. The [delta guide](/guides/okavango-delta/) " +
					"explains the flood calendar that makes the water levels so counter-intuitive.",
			},
			{
				Name: "Who it suits",
				Body: "People who would rather hear lions through canvas than through glass. " +
					"Bucket showers and a shared mess tent, but real beds and a crew that cooks " +
					"better than most lodges. It is also the cheapest honest way into the delta, " +
					"which is otherwise fly-in territory at " +
					"[fly-in prices](/decisions/budget/safari-cost-per-day/), and the " +
					"[green season](/decisions/timing/green-season-worth-it/) version is half the " +
					"price again.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "green-season-worth-it", Title: "Green season", Type: content.LinkDecision},
		},
		RelatedGuides: []content.Ref{
			{Key: "okavango-delta", Title: "Okavango Delta", Type: content.LinkGuide},
		},
	},
}
