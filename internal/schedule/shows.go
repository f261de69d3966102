package schedule

// Programming is the station's weekly schedule. Order matters: the first
// matching entry wins when windows overlap on the same day.
var Programming = []Show{
	// Weekday shows
	{
		Name:      "Madison and Martina por la Mañana",
		StartTime: "6:00 AM",
		EndTime:   "10:00 AM",
		Description: "Wake up your mornings with \"The Thought of the Day,\" " +
			"\"Living Social in an Anti-Social World,\" \"Roatan Topix,\" " +
			"\"Would YOU Rather,\" \"The Not Quite the News,\" and \"Roatan " +
			"Horrible Scopes,\" plus a lighthearted look at island life. " +
			"Hosted by Madison & Martina.",
		DaysOfWeek: "Monday-Friday",
	},
	{
		Name:        "Mandatory Marley at 4:20",
		StartTime:   "4:20 PM",
		EndTime:     "4:30 PM",
		Description: "Two back-to-back reggae songs every weekday at 4:20.",
		Sponsor:     "Umbul Umbul – Fine Home Furnishings, Gifts, and More",
		DaysOfWeek:  "Monday-Friday",
	},
	{
		Name:        "Five Decades at 5",
		StartTime:   "5:00 PM",
		EndTime:     "6:00 PM",
		Description: "An hour of the greatest rock ever made—from The Beatles to Led Zeppelin.",
		Sponsor:     "Sotheby's Roatan Island Real Estate",
		DaysOfWeek:  "Monday-Friday",
	},
	{
		Name:        "Salsa at Sunset",
		StartTime:   "6:00 PM",
		EndTime:     "7:00 PM",
		Description: "Salsa, Bachata, and Island vibes with Grammy-nominated host Joel Escalona.",
		Sponsor:     "Chin Chelete",
		DaysOfWeek:  "Monday-Friday",
	},
	{
		Name:      "Monsters of Rock – El Monstruos del Mundo",
		StartTime: "7:00 PM",
		EndTime:   "8:00 PM",
		Description: "R2 K2 (Russ Regentz & Kyle Kuhlmeyer) deliver hard-hitting rock " +
			"with attitude—Metallica, Van Halen, Mötley Crüe and more.",
		DaysOfWeek: "Monday-Friday",
	},
	{
		Name:        "LIVE in the Dragonfly Lounge",
		StartTime:   "8:00 PM",
		EndTime:     "10:00 PM",
		Description: "Curated evening selections from the Dragonfly Lounge Collection.",
		Sponsor:     "Dragonfly Rolls Sushi",
		DaysOfWeek:  "Monday-Friday",
	},

	// Saturday shows
	{
		Name:      "Caribbean Castaway",
		StartTime: "10:00 AM",
		EndTime:   "11:00 AM",
		Description: "Inspired by Desert Island Discs—guests choose the 8 songs " +
			"they'd take to a stranded Caribbean island. Archives available.",
		DaysOfWeek: "Saturday",
	},
	{
		Name:      "Caribbean Castaway",
		StartTime: "5:00 PM",
		EndTime:   "6:00 PM",
		Description: "Inspired by Desert Island Discs—guests choose the 8 songs " +
			"they'd take to a stranded Caribbean island. Archives available.",
		DaysOfWeek: "Saturday",
	},
	{
		Name:      "Radio Reggae with Pete the Beat",
		StartTime: "6:00 PM",
		EndTime:   "8:00 PM",
		Description: "The most-listened-to reggae show in Latin America. Pete the " +
			"Beat explores reggae from around the world.",
		Sponsor:    "Paradise Beach Hotel",
		DaysOfWeek: "Saturday",
	},
	{
		Name:        "LIVE in the Dragonfly Lounge",
		StartTime:   "8:00 PM",
		EndTime:     "9:00 PM",
		Description: "Curated evening selections from the Dragonfly Lounge Collection.",
		Sponsor:     "Dragonfly Rolls Sushi",
		DaysOfWeek:  "Saturday",
	},
	{
		Name:      "Caribbean Castaway",
		StartTime: "9:00 PM",
		EndTime:   "10:00 PM",
		Description: "Inspired by Desert Island Discs—guests choose the 8 songs " +
			"they'd take to a stranded Caribbean island. Archives available.",
		DaysOfWeek: "Saturday",
	},
	{
		Name:      "Little Steven's Underground Garage",
		StartTime: "10:00 PM",
		EndTime:   "12:00 AM",
		Description: "Rock history through the lens of Steve Van Zandt of the " +
			"E-Street Band—deep cuts, vinyl-era influences, and pure music geekdom.",
		DaysOfWeek: "Saturday",
	},

	// Sunday shows
	{
		Name:        "Acoustic Café",
		StartTime:   "8:00 AM",
		EndTime:     "10:00 AM",
		Description: "Hosted by Rob Reinhart since 1995. A mix of rock, folk, blues, pop, and more.",
		Sponsor:     "Montecillo's Coffee",
		DaysOfWeek:  "Sunday",
	},
	{
		Name:      "Cruisin' the Decades",
		StartTime: "10:00 AM",
		EndTime:   "11:00 AM",
		Description: "A 100-year journey through recorded music—one song per decade " +
			"from the 1920s to the 2020s. Created by Brad Savage.",
		DaysOfWeek: "Sunday",
	},
	{
		Name:      "The Bay Islands Blues Hour",
		StartTime: "11:00 AM",
		EndTime:   "12:00 PM",
		Description: "Marco Trezza guides listeners through timeless blues, modern " +
			"variations, and exclusive performances from the Marco de Sade Band.",
		DaysOfWeek: "Sunday",
	},
	{
		Name:      "Radio Reggae with Pete the Beat",
		StartTime: "6:00 PM",
		EndTime:   "8:00 PM",
		Description: "The most-listened-to reggae show in Latin America. Pete the " +
			"Beat explores reggae from around the world.",
		Sponsor:    "Paradise Beach Hotel",
		DaysOfWeek: "Sunday",
	},
	{
		Name:        "LIVE in the Dragonfly Lounge",
		StartTime:   "8:00 PM",
		EndTime:     "9:00 PM",
		Description: "Curated evening selections from the Dragonfly Lounge Collection.",
		Sponsor:     "Dragonfly Rolls Sushi",
		DaysOfWeek:  "Sunday",
	},
}
