package events

import "time"

// placeholderEvents is the built-in weekly directory, anchored to the
// given day. It stands in whenever the listing page is unreachable or
// unparseable.
func placeholderEvents(now time.Time) []MusicEvent {
	dayAt := func(daysFromToday, hour int) time.Time {
		d := now.AddDate(0, 0, daysFromToday)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, now.Location())
	}

	build := func(title, venue string, when time.Time, description, area, genre, performer string) MusicEvent {
		return MusicEvent{
			ID:          eventID(title, venue),
			Title:       title,
			Venue:       venue,
			DateTime:    when,
			Description: description,
			Area:        area,
			Genre:       genre,
			Performer:   performer,
		}
	}

	return []MusicEvent{
		build("Acoustic Sunset", "Sundowners", dayAt(0, 17),
			"Enjoy acoustic guitar and vocals as the sun sets over the Caribbean.",
			"West End", "Acoustic", "Mike Thompson"),
		build("Jazz Night", "The Blue Marlin", dayAt(0, 19),
			"Smooth jazz and cocktails in an intimate waterfront setting.",
			"West End", "Jazz", "Island Jazz Trio"),
		build("Reggae Thursday", "Half Moon Bay Resort", dayAt(0, 20),
			"Classic reggae vibes on the beach with local bands.",
			"West Bay", "Reggae", "Roatan Roots Band"),
		build("Caribbean Night", "Hole in the Wall", dayAt(0, 19),
			"Authentic Caribbean music and cuisine on the east end.",
			"East End", "Caribbean/Soca", "East End All-Stars"),
		build("Beach Party Thursdays", "Lost Paradise Inn", dayAt(0, 18),
			"Weekly beach party with DJ and dancing.",
			"Sandy Bay", "Dance/Electronic", "DJ Sunset"),

		build("Friday Night Live", "Foster's West End", dayAt(1, 20),
			"Live rock and pop covers to kick off the weekend.",
			"West End", "Rock/Pop", "The Island Rockers"),
		build("Karaoke Night", "Vintage Pearl", dayAt(1, 21),
			"Sing your heart out at the island's favorite karaoke spot.",
			"Sandy Bay", "Karaoke", "DJ Carlos"),
		build("Latin Dance Party", "Temporary Cal's Cantina", dayAt(1, 22),
			"Salsa, merengue, and bachata with live Latin band.",
			"West Bay", "Latin", "Los Caribenos"),
		build("Country Night", "The Rusty Fish", dayAt(1, 20),
			"Country music and line dancing.",
			"French Harbour", "Country", "Island Cowboys"),
		build("Live Acoustic Fridays", "Roatan Oasis", dayAt(1, 19),
			"Unplugged performances in a relaxed setting.",
			"Sandy Bay", "Acoustic/Folk", "The Wanderers"),

		build("Beach BBQ & Blues", "Infinity Bay Resort", dayAt(2, 18),
			"Beachfront BBQ with live blues music and ocean views.",
			"West Bay", "Blues", "Blue Wave Blues Band"),
		build("DJ Night at Sundowners", "Sundowners", dayAt(2, 21),
			"Dance the night away with top island DJs spinning house and electronic.",
			"West End", "Electronic/House", "DJ Tropix"),
		build("Live Band Saturdays", "Barefoot Cay Resort", dayAt(2, 19),
			"Weekly live band featuring classic rock, country, and island favorites.",
			"French Harbour", "Rock/Country", "Barefoot Band"),
		build("Reggae & Rum", "West Bay Beach Bar", dayAt(2, 17),
			"Reggae rhythms and rum cocktails on the beach.",
			"West Bay", "Reggae", "Island Vibe Collective"),
		build("Acoustic Sessions", "Beso del Sol", dayAt(2, 18),
			"Intimate acoustic performances with talented local musicians.",
			"Oak Ridge", "Acoustic", "Sarah Williams"),
		build("Salsa Saturdays", "Henry Morgan Resort", dayAt(2, 20),
			"Latin dance night with salsa lessons included.",
			"West End", "Latin/Salsa", "Salsa Caliente Band"),
		build("Island Classics", "Herby's Sports Bar", dayAt(2, 19),
			"Classic island tunes and local favorites.",
			"French Harbour", "Island/Reggae", "Herby's House Band"),

		build("Sunday Funday", "Sundowners", dayAt(3, 15),
			"Afternoon party with DJ, beach games, and island vibes.",
			"West End", "Variety/DJ", "DJ Island Mike"),
		build("Sunday Sunset Serenade", "The Blue Marlin", dayAt(3, 17),
			"Mellow acoustic tunes as you watch the sunset.",
			"West End", "Acoustic", "Tom & Friends"),
		build("Beach Bonfire Jam", "Bananarama Resort", dayAt(3, 19),
			"Beach bonfire with live music and s'mores.",
			"West Bay", "Folk/Island", "Open Mic Night"),
		build("Sunday Brunch Jazz", "Casa Romeo", dayAt(3, 11),
			"Elegant Sunday brunch with live jazz music.",
			"West Bay", "Jazz", "Brunch Jazz Ensemble"),

		build("Monday Night Blues", "Foster's West End", dayAt(4, 19),
			"Start your week with soulful blues music.",
			"West End", "Blues", "The Monday Blues Band"),
		build("Trivia & Tunes", "Vintage Pearl", dayAt(4, 20),
			"Test your knowledge with live music breaks.",
			"Sandy Bay", "Variety", "DJ Quiz Master"),

		build("Taco Tuesday Live", "Temporary Cal's Cantina", dayAt(5, 18),
			"Tacos and live mariachi music.",
			"West Bay", "Mariachi/Latin", "Mariachi Roatan"),
		build("Open Mic Night", "Sundowners", dayAt(5, 20),
			"Show off your talent or just enjoy the performances.",
			"West End", "Variety/Open Mic", "Various Artists"),

		build("Wine & Jazz Wednesday", "The Blue Marlin", dayAt(6, 19),
			"Sophisticated evening of wine tasting and smooth jazz.",
			"West End", "Jazz", "The Smooth Cats"),
		build("Reggae Midweek", "Beachers", dayAt(6, 20),
			"Midweek reggae to get you through to the weekend.",
			"Sandy Bay", "Reggae", "Irie Vibes"),
		build("Acoustic Wednesday", "Pura Vida", dayAt(6, 18),
			"Mellow acoustic music in a cozy atmosphere.",
			"Punta Gorda", "Acoustic", "Local Legends"),
	}
}
