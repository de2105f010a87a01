package catalog

import "github.com/okavangolabs/sundowner/content"

var guides = []content.Article{
	{
		Key:       "serengeti",
		Kind:      content.KindGuide,
		Title:     "Serengeti National Park",
		Subtitle:  "14,750 square kilometres of grass and consequence",
		Summary:   "The benchmark park. Everything about organising a Serengeti trip follows from one fact: it is enormous, and the action moves around inside it.",
		Hero:      "/public/img/serengeti-kopje.jpg",
		Published: true,
		Updated:   "2026-06-12",
		Sections: []content.Section{
			{
				Name: "Orientation",
				Body: "Three Serengetis share one name. The **southern plains** are short grass and " +
					"big horizons, at their best December to March. The **central Seronera** corridor " +
					"works year-round on resident game and carries most of the traffic. The " +
					"**northern Kogatende** country on the Mara River is crossing territory, " +
					"July to October, see [the timing question](/decisions/timing/best-time-serengeti/).\n\n" +
					"Distances are real: Seronera to Kogatende is a half-day drive or a short hop by " +
					"Cessna. Position the camp for the season instead of commuting.",
			},
			{
				Name: "Practical notes",
				Body: "**Fees.** Roughly $83 per adult per day in high season, paid through your " +
					"operator, current rates at [Tanzania National Parks](https://www.tanzaniaparks.go.tz).\n" +
					"**Getting in.** Fly from Arusha to one of seven strips, or drive the " +
					"[northern circuit](/trips/northern-circuit-classic/) road in through Ngorongoro.\n" +
					"**Balloons.** Seronera and the south fly year-round, book before arrival.\n" +
					"**Phone signal.** Better than you hope, worse than you fear.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "best-time-serengeti", Title: "Migration timing", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "northern-circuit-classic", Title: "Northern circuit", Type: content.LinkTrip},
		},
		RelatedGuides: []content.Ref{
			{Key: "masai-mara", Title: "Masai Mara", Type: content.LinkGuide},
		},
	},
	{
		Key:       "masai-mara",
		Kind:      content.KindGuide,
		Title:     "Masai Mara National Reserve",
		Subtitle:  "Small, dense, and relentless",
		Summary:   "The Mara is a tenth the size of the Serengeti with arguably the highest big-cat density in Africa. The trade is traffic, which the conservancies largely solve.",
		Published: true,
		Updated:   "2026-01-15",
		Sections: []content.Section{
			{
				Name: "Reserve or conservancy",
				Body: "The reserve proper is open to day-trippers and can put a dozen vehicles on a " +
					"leopard. The **conservancies** on its northern edge, Naboisho, Olare Motorogi, " +
					"Mara North, lease land from Maasai owners, cap vehicles per sighting, and allow " +
					"night drives and walking. A conservancy camp costs more per night and gives back " +
					"more per drive, the arithmetic is laid out in " +
					"[the cost piece](/decisions/budget/safari-cost-per-day/).",
			},
			{
				Name: "Practical notes",
				Body: "**Getting in.** A dozen daily Caravans from Wilson airport, 45 minutes; the " +
					"[long weekend plan](/trips/mara-long-weekend/) is built around them.\n" +
					"**Crossings.** August to October on the Mara and Talek rivers.\n" +
					"**Weather.** At 1,600 metres the mornings are cold all year, pack the fleece.",
			},
		},
		RelatedDecisions: []content.Ref{
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
		Key:       "okavango-delta",
		Kind:      content.KindGuide,
		Title:     "The Okavango Delta",
		Subtitle:  "A river that ends in sand, on purpose",
		Summary:   "Angola's rain arrives in Botswana as a slow flood that peaks in the dry season. The delta's whole logic runs on that five-month delay.",
		Hero:      "/public/img/delta-aerial.jpg",
		Published: true,
		Updated:   "2025-09-30",
		Sections: []content.Section{
			{
				Name: "The flood calendar",
				Body: "Rain falls in the Angolan highlands in January; the flood crests in the delta " +
					"around June and July, in the middle of the rainless winter. High water means " +
					"mokoro channels and boat access; low water, October through December, " +
					"concentrates game on the permanent lagoons.\n\n" +
					"This is why delta camps quote **water activities** and **land activities** by " +
					"month, and why [the green season logic](/decisions/timing/green-season-worth-it/) " +
					"inverts here.",
			},
			{
				Name: "Practical notes",
				Body: "**Access.** Everything flies out of Maun; 12-seaters and strict " +
					"[soft-bag limits](/stories/packing-for-your-first-safari/).\n" +
					"**Cost.** The concessions are private and all-inclusive, this is the top band " +
					"of the price chart. The [mobile-camp route](/trips/okavango-mobile/) is the " +
					"budget door in.\n" +
					"**Malaria.** Present, seasonal, take it seriously.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "green-season-worth-it", Title: "Green season", Type: content.LinkDecision},
		},
		RelatedTrips: []content.Ref{
			{Key: "okavango-mobile", Title: "Okavango mobile", Type: content.LinkTrip},
		},
	},
	{
		Key:       "kruger",
		Kind:      content.KindGuide,
		Title:     "Kruger National Park",
		Subtitle:  "The people's park, two million hectares of it",
		Summary:   "Kruger is the most accessible great park in Africa: tarred roads, bookable rest camps, and a private-reserve fringe that rivals anywhere on the continent.",
		Published: true,
		Updated:   "2025-11-20",
		Sections: []content.Section{
			{
				Name: "Two parks in one",
				Body: "The national park itself is [self-drive country](/decisions/logistics/self-drive-kruger/): " +
					"fenced rest camps, fuel stations, field guides sold at every shop. Along its " +
					"unfenced western edge run the private reserves, Sabi Sand above all, where " +
					"off-road guiding produces the leopard photographs the lodges are famous for. " +
					"Same ecosystem, different products, and the combination beats either alone.",
			},
			{
				Name: "Practical notes",
				Body: "**Seasons.** Dry winter, May to September, thins the bush and pulls game to " +
					"water. Summer is green, hot, and better for birds than for mammals.\n" +
					"**Malaria.** Low but present, worst in late summer.\n" +
					"**Booking.** Rest camps via [SANParks](https://www.sanparks.org) 11 months " +
					"ahead; the southern camps fill first.",
			},
		},
		RelatedDecisions: []content.Ref{
			{Key: "self-drive-kruger", Title: "Self-drive Kruger", Type: content.LinkDecision},
		},
	},
}
