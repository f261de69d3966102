package dining

import (
	"testing"
)

func newTestManager() *Manager {
	return NewManager(nil, nil)
}

func TestPlaceholderDirectoryIsPopulated(t *testing.T) {
	directory := placeholderRestaurants()

	if len(directory) < 50 {
		t.Fatalf("built-in directory has %d restaurants, want at least 50", len(directory))
	}

	seen := make(map[string]bool)
	byArea := make(map[IslandArea]int)
	for _, r := range directory {
		if r.ID == "" {
			t.Errorf("restaurant %q has empty ID", r.Name)
		}
		if seen[r.ID] {
			t.Errorf("duplicate restaurant ID %q", r.ID)
		}
		seen[r.ID] = true
		if r.Name == "" || r.Area == "" || len(r.Cuisine) == 0 {
			t.Errorf("restaurant %q is missing fields: %+v", r.Name, r)
		}
		byArea[r.Area]++
	}

	for _, area := range Areas() {
		if byArea[area] == 0 {
			t.Errorf("no restaurants in %s", area)
		}
	}
}

func TestSponsoredListingsSortFirst(t *testing.T) {
	m := newTestManager()
	all := m.Restaurants()

	lastSponsored := -1
	firstRegular := len(all)
	for i, r := range all {
		if r.Sponsored {
			lastSponsored = i
		} else if i < firstRegular {
			firstRegular = i
		}
	}

	if lastSponsored == -1 {
		t.Fatal("directory has no sponsored listings")
	}
	if lastSponsored > firstRegular {
		t.Errorf("sponsored listing at %d after regular listing at %d", lastSponsored, firstRegular)
	}

	for i := firstRegular + 1; i < len(all); i++ {
		if all[i].Name < all[i-1].Name {
			t.Errorf("regular listings out of name order at %d: %q after %q", i, all[i].Name, all[i-1].Name)
		}
	}
}

func TestByArea(t *testing.T) {
	m := newTestManager()

	for _, area := range Areas() {
		listings := m.ByArea(area)
		if len(listings) == 0 {
			t.Errorf("ByArea(%s) returned nothing", area)
		}
		for _, r := range listings {
			if r.Area != area {
				t.Errorf("ByArea(%s) returned restaurant in %s", area, r.Area)
			}
		}
	}
}

func TestSearch(t *testing.T) {
	m := newTestManager()

	tests := []struct {
		query   string
		wantHit string
	}{
		{"pizza", "Georgio's Pizzeria"},
		{"SUSHI", "Dragonfly Sushi"},
		{"french harbour", "Gio's"},
		{"jonesville", "Hole in the Wall (Jonesville)"},
		{"vegan", "Earth Mama's Garden Cafe"},
	}

	for _, tt := range tests {
		results := m.Search(tt.query)
		found := false
		for _, r := range results {
			if r.Name == tt.wantHit {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(%q) missing %q", tt.query, tt.wantHit)
		}
	}

	if len(m.Search("zzzzz")) != 0 {
		t.Error("Search for nonsense should return nothing")
	}
	if len(m.Search("")) != len(m.Restaurants()) {
		t.Error("empty Search should return everything")
	}
}

func TestToggleFavorite(t *testing.T) {
	m := newTestManager()
	id := m.Restaurants()[0].ID

	if !m.ToggleFavorite(id) {
		t.Error("first toggle should report favorited")
	}
	if !m.IsFavorite(id) {
		t.Error("restaurant should be a favorite after toggle")
	}

	favs := m.Favorites()
	if len(favs) != 1 || favs[0].ID != id {
		t.Errorf("Favorites() = %v, want the toggled restaurant", favs)
	}

	if m.ToggleFavorite(id) {
		t.Error("second toggle should report unfavorited")
	}
	if len(m.Favorites()) != 0 {
		t.Error("Favorites() should be empty after untoggle")
	}
}

func TestFavoritesSeededFromConfig(t *testing.T) {
	base := newTestManager()
	id := base.Restaurants()[0].ID

	m := NewManager(nil, []string{id})
	if !m.IsFavorite(id) {
		t.Error("favorite seeded at construction should be set")
	}
	if ids := m.FavoriteIDs(); len(ids) != 1 || ids[0] != id {
		t.Errorf("FavoriteIDs() = %v", ids)
	}
}

func TestRestaurantHelpers(t *testing.T) {
	r := Restaurant{
		Name:    "Sundowners",
		Cuisine: []string{"Bar & Grill", "American", "Seafood"},
		Email:   "sundowners@roatan.com",
	}

	if got := r.CuisineString(); got != "Bar & Grill, American, Seafood" {
		t.Errorf("CuisineString() = %q", got)
	}
	if !r.HasContact() {
		t.Error("restaurant with email should report contact")
	}
	if (Restaurant{Name: "X"}).HasContact() {
		t.Error("restaurant with no phone or email should not report contact")
	}
}

func TestRestaurantID(t *testing.T) {
	a := restaurantID("Gio's", FrenchHarbour)
	b := restaurantID("Gio's Oak Ridge", OakRidge)
	if a == b {
		t.Error("distinct restaurants should get distinct IDs")
	}
	if a != restaurantID("Gio's", FrenchHarbour) {
		t.Error("restaurantID should be stable across calls")
	}
}
