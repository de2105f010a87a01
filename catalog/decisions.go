package catalog

import "github.com/okavangolabs/sundowner/content"

// decisions are the records answering topic questions. Their keys match
// topic slugs, so they route under /decisions/ rather than /stories/.
var decisions = []content.Article{
	{
		Key:       "best-time-serengeti",
		Kind:      content.KindStory,
		Title:     "The best time to see the Serengeti migration",
		Subtitle:  "River crossings get the photos, but the herds are worth seeing in every season",
		Summary:   "The migration never leaves the Serengeti ecosystem, it moves in a circle. Pick the month by which stage you want to see, not by which month is called peak.",
		Hero:      "/public/img/mara-river-crossing.jpg",
		Published: true,
		Updated:   "2026-06-12",
		Sections: []content.Section{
			{
				Name: "The short answer",
				Body: "July to October for the Mara River crossings in the northern Serengeti. " +
					"Late January to February for calving on the southern plains. Both are superb, " +
					"they are just different shows. The crossings are chaos and dust; calving is " +
					"half a million wildebeest born in a few weeks, with the predator density that follows.\n\n" +
					"If your dates are fixed, do not force the crossings. The herds move on rain, " +
					"not on a calendar, and a **crossing is never guaranteed** on any given day. Build " +
					"the trip around the region the herds usually occupy in your month and treat a " +
					"crossing as a bonus.",
			},
			{
				Name: "Month by month",
				Body: "**December to March.** Southern plains and Ndutu. Calving peaks late January " +
					"into February. Short grass, huge visibility, big cat action.\n" +
					"**April to May.** Long rains. The herds drift north-west through the Moru and " +
					"western corridor. Lowest prices of the year, some camps close.\n" +
					"**June.** The rut. Columns form and push toward the Grumeti River.\n" +
					"**July to October.** Northern Serengeti and the [Mara River](/guides/serengeti/) " +
					"country. Crossing season, and the busiest months.\n" +
					"**November.** Short rains pull the herds south again. Quiet, green, underrated.",
			},
			{
				Name: "Booking it",
				Body: "Crossing-season camps in the north sell out close to a year ahead. The " +
					"[classic northern circuit](/trips/northern-circuit-classic/) pairs the central " +
					"Serengeti with the Ngorongoro Crater, which works in any month. If you are " +
					"weighing costs, the [budget math](/decisions/budget/safari-cost-per-day/) changes " +
					"a lot by season.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "green-season-worth-it", Title: "Green season", Type: content.LinkDecision},
			{Key: "kenya-or-tanzania", Title: "Kenya or Tanzania", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "northern-circuit-classic", Title: "Northern circuit", Type: content.LinkTrip},
		},
		RelatedGuides: []content.Ref{
			{Key: "serengeti", Title: "Serengeti", Type: content.LinkGuide},
		},
	},
	{
		Key:       "green-season-worth-it",
		Kind:      content.KindStory,
		Title:     "Is the green season worth booking?",
		Subtitle:  "Half the price, all the light",
		Summary:   "The rains scare people off, which is exactly why the green season works: empty sightings, dramatic skies, and rates that fall by a third or more.",
		Published: true,
		Updated:   "2026-04-03",
		Sections: []content.Section{
			{
				Name: "The case for it",
				Body: "Green season means the rains, roughly November to April depending on the " +
					"region. Prices drop hard, the land turns green, migrant birds arrive, and most " +
					"plains animals drop their young. Photographers book it on purpose for the light.\n\n" +
					"The catch is real: some roads close, some areas empty of game as water spreads " +
					"out, and afternoon storms can cost you a drive. In the [Okavango](/guides/okavango-delta/) " +
					"the flood cycle runs opposite to the rain, so the calendar is less intuitive than " +
					"it looks.",
			},
			{
				Name: "Where it works",
				Body: "**Southern Serengeti.** January and February sit inside the green season and " +
					"carry the calving spectacle.\n" +
					"**Okavango and Chobe.** November to March is quiet and cheap; the delta flood " +
					"arrives months after the rain.\n" +
					"**Kruger and the lowveld.** Thick bush hides game, but birding peaks and " +
					"[self-driving](/decisions/logistics/self-drive-kruger/) stays easy on tar roads.\n" +
					"**Anywhere with black cotton soil.** Check with your operator, some tracks are " +
					"simply impassable.",
			},
			{
				Name: "The verdict",
				Body: "Worth it if you value price and solitude over a guaranteed packed sightings " +
					"board, and if your heart is not set on a river crossing. First-timers with one " +
					"shot at the trip usually do better in the dry months, the " +
					"[cost question](/decisions/budget/safari-cost-per-day/) shows what that choice buys.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "best-time-serengeti", Title: "Best time for the migration", Type: content.LinkDecision},
			{Key: "safari-cost-per-day", Title: "Cost per day", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "okavango-mobile", Title: "Okavango mobile safari", Type: content.LinkTrip},
		},
		RelatedGuides: []content.Ref{
			{Key: "serengeti", Title: "Serengeti", Type: content.LinkGuide},
		},
	},
	{
		Key:       "kenya-or-tanzania",
		Kind:      content.KindStory,
		Title:     "Kenya or Tanzania for a first safari?",
		Subtitle:  "The honest answer is that you cannot lose",
		Summary:   "Same ecosystem, different flavours. Kenya is shorter drives and denser camps; Tanzania is bigger parks and longer horizons. Budget and timing decide it.",
		Hero:      "/public/img/two-jeeps-mara.jpg",
		Published: true,
		Updated:   "2026-02-18",
		Sections: []content.Section{
			{
				Name: "What actually differs",
				Body: "The Masai Mara and the Serengeti are one grassland with a border through it. " +
					"The wildlife does not care. What differs is logistics: Kenya packs its safari " +
					"circuit into a tighter area with short flights from Nairobi, while Tanzania's " +
					"northern circuit strings big parks along one long road.\n\n" +
					"**Kenya.** Easier with limited days, strong value at the mid-range, and the " +
					"[Mara](/guides/masai-mara/) delivers big cats almost on demand.\n" +
					"**Tanzania.** The [Serengeti](/guides/serengeti/) dwarfs the Mara, the Ngorongoro " +
					"Crater has no equivalent anywhere, and camps spread thinner across the space.",
			},
			{
				Name: "Deciding",
				Body: "With four or five nights, pick Kenya, something like a " +
					"[long weekend in the Mara](/trips/mara-long-weekend/). With eight or more, " +
					"Tanzania's [northern circuit](/trips/northern-circuit-classic/) repays the " +
					"travel time. July to October favours whichever side of the river the herds " +
					"occupy, see [the migration timing](/decisions/timing/best-time-serengeti/) for " +
					"that, and the two-country combination is legitimate but burns a border crossing's " +
					"worth of time and visa money.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "best-time-serengeti", Title: "Migration timing", Type: content.LinkDecision},
			{Key: "safari-cost-per-day", Title: "Cost per day", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "northern-circuit-classic", Title: "Northern circuit", Type: content.LinkTrip},
			{Key: "mara-long-weekend", Title: "Mara long weekend", Type: content.LinkTrip},
		},
		RelatedGuides: []content.Ref{
			{Key: "serengeti", Title: "Serengeti", Type: content.LinkGuide},
			{Key: "masai-mara", Title: "Masai Mara", Type: content.LinkGuide},
		},
	},
	{
		Key:       "safari-cost-per-day",
		Kind:      content.KindStory,
		Title:     "What a safari really costs per day",
		Subtitle:  "From camping under canvas to five figures a night",
		Summary:   "Safari pricing is opaque until you split it into park fees, beds, and wheels. Then every quote makes sense.",
		Published: true,
		Updated:   "2026-07-01",
		Sections: []content.Section{
			{
				Name: "The bands",
				Body: "**Under $150.** Self-drive in South Africa: national-park rest camps, your own " +
					"car, supermarket food. See [the Kruger question](/decisions/logistics/self-drive-kruger/).\n" +
					"**$250 to $450.** Group camping safaris and the solid mid-range lodges of Kenya " +
					"and southern Africa.\n" +
					"**$500 to $900.** Classic private-vehicle safari in Tanzania, good tented camps.\n" +
					"**$1,000 and up.** The famous names, the private concessions, the " +
					"[Okavango](/guides/okavango-delta/) fly-in camps. Over $2,000 a night exists and " +
					"sells out.",
			},
			{
				Name: "Where the money goes",
				Body: "Park fees alone run $70 to $85 per person per day in the Serengeti and more " +
					"than that in the Ngorongoro Crater, before a single bed or litre of diesel. A " +
					"private vehicle and guide is the next big block. Remote camps pay for every " +
					"lettuce by bush plane, which is why the delta costs what it costs.\n\n" +
					"The honest lever is season. The same camp can drop 40 percent between July and " +
					"[the green season](/decisions/timing/green-season-worth-it/), and the animals do " +
					"not read the rate sheet.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "kenya-or-tanzania", Title: "Kenya or Tanzania", Type: content.LinkDecision},
			{Key: "green-season-worth-it", Title: "Green season", Type: content.LinkDecision},
			{Key: "self-drive-kruger", Title: "Self-drive Kruger", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "mara-long-weekend", Title: "Mara long weekend", Type: content.LinkTrip},
		},
		RelatedGuides: []content.Ref{
			{Key: "kruger", Title: "Kruger", Type: content.LinkGuide},
		},
	},
	{
		Key:       "self-drive-kruger",
		Kind:      content.KindStory,
		Title:     "Self-drive Kruger or book a guided safari?",
		Subtitle:  "The cheapest great safari on the continent, if you drive it yourself",
		Summary:   "Kruger is the one marquee park built for self-driving: tar roads, marked rest camps, and gate-to-gate signage. Whether you should depends on what you want from the hours.",
		Published: true,
		Updated:   "2025-11-20",
		Sections: []content.Section{
			{
				Name: "The short answer",
				Body: "Self-drive if the budget is tight or you like the hunt: reading the road, " +
					"working the sighting yourself, stopping as long as you want. Book guided if you " +
					"want interpretation, off-road access on private reserves, and someone else " +
					"handling the 4:30 wake-ups. Many people split the difference, a few self-drive " +
					"days in the park, then two nights in a private reserve on the western boundary.",
			},
			{
				Name: "Know before you go",
				Body: "**Booking.** Rest camps go on sale 11 months out through " +
					"[SANParks](https://www.sanparks.org) and school holidays vanish fast.\n" +
					"**The car.** A normal hatchback genuinely works, height helps more than 4x4.\n" +
					"**Gate times.** They are enforced, plan drives camp to camp with slack.\n" +
					"**Sightings.** A guided open vehicle sees more per hour; your own car sees it " +
					"on your own terms. Budget numbers live in " +
					"[the cost breakdown](/decisions/budget/safari-cost-per-day/).",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "safari-cost-per-day", Title: "Cost per day", Type: content.LinkDecision},
		},
		RelatedGuides: []content.Ref{
			{Key: "kruger", Title: "Kruger", Type: content.LinkGuide},
		},
	},
}
