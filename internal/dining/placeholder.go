package dining

// placeholderRestaurants is the built-in island directory. It stands
// in whenever the directory page is unreachable or unparseable.
func placeholderRestaurants() []Restaurant {
	build := func(name string, area IslandArea, cuisine []string, email, address, facebookURL string, sponsored bool) Restaurant {
		return Restaurant{
			ID:          restaurantID(name, area),
			Name:        name,
			Area:        area,
			Cuisine:     cuisine,
			Email:       email,
			Address:     address,
			FacebookURL: facebookURL,
			Sponsored:   sponsored,
		}
	}

	return []Restaurant{
		build("Anthony's Chicken", WestEnd, []string{"Jerk Chicken", "Caribbean", "Local"},
			"", "West End Village", "https://facebook.com/anthonyschickenroatan", true),
		build("Creole's Rotisserie Chicken", WestEnd, []string{"Caribbean", "Chicken", "Local"},
			"", "West End", "https://facebook.com/creoles", false),
		build("Calelu's", WestEnd, []string{"Honduran", "Baleadas", "Local"},
			"", "West End Village", "", false),
		build("Pazzo Italian Restaurant", WestEnd, []string{"Italian", "Pasta", "Seafood"},
			"", "West End", "https://facebook.com/pazzoroatan", false),
		build("Roatan Oasis", WestEnd, []string{"Fine Dining", "International", "Sustainable"},
			"", "West End", "https://facebook.com/roatanoasis", false),
		build("Vintage Pearl", WestEnd, []string{"Fine Dining", "Fusion", "International"},
			"", "West End Village", "https://facebook.com/vintagepearl", false),
		build("Sundowners", WestEnd, []string{"Bar & Grill", "American", "Seafood"},
			"sundowners@roatan.com", "West End Main Road", "https://facebook.com/sundownersroatan", false),
		build("Argentinian Grill", WestEnd, []string{"Argentinian", "Steakhouse", "Grill"},
			"", "West End", "", false),
		build("The Blue Marlin", WestEnd, []string{"Seafood", "International", "Bar"},
			"", "West End Beach", "https://facebook.com/bluemarlinroatan", false),
		build("Cannibal Cafe", WestEnd, []string{"Coffee", "Breakfast", "Cafe"},
			"", "West End", "https://facebook.com/cannibalcafe", false),
		build("Earth Mama's Garden Cafe", WestEnd, []string{"Vegetarian", "Vegan", "Healthy"},
			"", "West End", "", false),
		build("Thai Orchid", WestEnd, []string{"Thai", "Asian"},
			"", "West End", "", false),
		build("Beachers", WestEnd, []string{"Beach Bar", "Seafood", "Caribbean"},
			"", "West End Beach", "https://facebook.com/beachersroatan", false),
		build("Vintage Pearl Beach Resort Restaurant", WestEnd, []string{"International", "Seafood"},
			"", "West End Beach", "", false),
		build("The Thirsty Turtle", WestEnd, []string{"Bar & Grill", "American"},
			"", "West End", "https://facebook.com/thirstyturtleroatan", false),
		build("Café Escondido", WestEnd, []string{"Coffee", "Breakfast", "Lunch"},
			"", "West End", "", false),
		build("Oolala Crepes & Gelato", WestEnd, []string{"Crepes", "Dessert", "Gelato"},
			"", "West End", "", false),
		build("Lighthouse Restaurant", WestEnd, []string{"Seafood", "International"},
			"", "West End", "", false),
		build("Georgio's Pizzeria", WestEnd, []string{"Pizza", "Italian"},
			"", "West End", "", false),
		build("Blue Channel", WestEnd, []string{"International", "Seafood"},
			"", "West End", "", false),
		build("Cocolobo", WestEnd, []string{"Beach Bar", "Grill"},
			"", "West End Beach", "https://facebook.com/cocolobo", false),
		build("Rudy's", WestEnd, []string{"Local", "Caribbean"},
			"", "West End", "", false),

		build("Luna Muna", WestBay, []string{"Fine Dining", "International", "Fusion"},
			"", "Ibagari Boutique Hotel, West Bay", "https://facebook.com/lunamunaroatan", true),
		build("Kismet Beach Bar", WestBay, []string{"Beach Bar", "Seafood", "Cocktails"},
			"", "The Meridian Hotel, West Bay", "https://facebook.com/kismetbeachbar", false),
		build("Alera", WestBay, []string{"Mediterranean", "Caribbean Fusion"},
			"", "West Bay Beach", "", false),
		build("Silversides Restaurant & Bar", WestBay, []string{"Seafood", "International"},
			"", "West Bay Beach", "", false),
		build("Foster's West Bay", WestBay, []string{"Bar & Grill", "American"},
			"", "West Bay", "https://facebook.com/fosterswestbay", false),
		build("Beach House Roatan", WestBay, []string{"Beach Bar", "Grill"},
			"", "West Bay Beach", "", false),
		build("Frangipani", WestBay, []string{"International", "Italian", "Seafood"},
			"info@frangipani.com", "West Bay", "", false),
		build("Celeste's Restaurant", WestBay, []string{"Local", "Caribbean"},
			"", "West Bay", "", false),
		build("Blue Parrot Beach Bar", WestBay, []string{"Beach Bar", "Seafood"},
			"", "West Bay Beach", "", false),
		build("Pura Vida Beach Bar", WestBay, []string{"Beach Bar", "Grill"},
			"", "West Bay Beach", "", false),
		build("Infinity Bay Restaurant", WestBay, []string{"International", "Seafood"},
			"", "Infinity Bay Resort, West Bay", "", false),
		build("Bananarama Restaurant", WestBay, []string{"International", "Bar"},
			"", "Bananarama Dive Resort, West Bay", "", false),
		build("Cafe Marco Polo", WestBay, []string{"Italian", "Pizza", "Pasta"},
			"", "West Bay", "", false),

		build("The Sunken Fish Restaurant", SandyBay, []string{"Seafood", "Island Fusion", "Oceanfront"},
			"", "Tranquilseas Eco Lodge, Sandy Bay", "https://facebook.com/thesunkenfish", true),
		build("Blue Bahia Resort Beach & Grill", SandyBay, []string{"Seafood", "Grill", "International"},
			"", "Sandy Bay Main Road", "", false),
		build("Papa Bones", SandyBay, []string{"Pizza", "Italian"},
			"", "Sandy Bay", "https://facebook.com/papabones", false),
		build("Dragonfly Sushi", SandyBay, []string{"Sushi", "Asian", "Cocktails"},
			"", "Sandy Bay", "", false),
		build("The Pineapple Villas Restaurant", SandyBay, []string{"Caribbean", "American"},
			"", "Sandy Bay", "https://facebook.com/pineapplevillas", false),
		build("Anthony's Key Resort Restaurant", SandyBay, []string{"International", "Seafood"},
			"dining@anthonyskey.com", "Sandy Bay", "", false),
		build("Hole in the Wall", SandyBay, []string{"Caribbean", "Seafood", "Local"},
			"", "Sandy Bay", "https://facebook.com/holeinthewall", false),
		build("Sandy Bay Beach Club", SandyBay, []string{"Beach Bar", "Grill"},
			"", "Sandy Bay Beach", "", false),
		build("Roatan Institute for Marine Sciences Cafe", SandyBay, []string{"Cafe", "Snacks"},
			"", "Sandy Bay", "", false),

		build("Gio's", FrenchHarbour, []string{"Italian", "Pizza", "Seafood", "King Crab"},
			"", "French Harbour", "https://facebook.com/giosroatan", true),
		build("Temporary Cal", FrenchHarbour, []string{"Sushi", "Asian Fusion"},
			"info@temporarycal.com", "French Harbour Marina", "", false),
		build("Herby's Sports Bar & Grill", FrenchHarbour, []string{"American", "Sports Bar", "Grill"},
			"", "Clarion Resort, French Harbour", "", false),
		build("Pineapple Grill", FrenchHarbour, []string{"Breakfast", "American"},
			"", "Clarion Resort, French Harbour", "", false),
		build("Eldon's Supermarket Deli", FrenchHarbour, []string{"Deli", "American", "Groceries"},
			"", "French Harbour", "", false),
		build("French Harbour Yacht Club", FrenchHarbour, []string{"International", "Seafood"},
			"", "French Harbour Marina", "", false),
		build("Romeo's Resort Restaurant", FrenchHarbour, []string{"International", "Seafood"},
			"", "French Harbour", "", false),

		build("BJ's Backyard", OakRidge, []string{"Caribbean", "Seafood", "Local"},
			"", "Oak Ridge", "https://facebook.com/bjsbackyard", false),
		build("Hole in the Wall (Jonesville)", OakRidge, []string{"Caribbean", "Seafood"},
			"", "Jonesville, Oak Ridge", "https://facebook.com/holeinthewall", false),
		build("Cafe Escondido Oak Ridge", OakRidge, []string{"Coffee Shop", "Breakfast"},
			"", "Oak Ridge", "", false),
		build("Gio's Oak Ridge", OakRidge, []string{"Italian", "Pizza"},
			"", "Oak Ridge", "", false),

		build("Paya Bay Resort Restaurant", EastEnd, []string{"International", "Vegan Options", "Organic"},
			"info@payabay.com", "East End", "https://facebook.com/payabay", false),
		build("La Sirena Beach Bar", EastEnd, []string{"Beach Bar", "Seafood", "Caribbean"},
			"", "Camp Bay Beach, East End", "", false),
		build("The Lighthouse Roatan", EastEnd, []string{"Seafood", "Caribbean"},
			"", "East End Point", "https://facebook.com/lighthouse", false),
		build("Punta Blanca Resort Restaurant", EastEnd, []string{"International", "Seafood"},
			"", "East End", "", false),
	}
}
