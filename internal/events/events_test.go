package events

import (
	"testing"
	"time"
)

func newTestManager() *Manager {
	return NewManager(nil, nil)
}

func TestPlaceholderDirectoryIsPopulated(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	directory := placeholderEvents(now)

	if len(directory) < 20 {
		t.Fatalf("built-in directory has %d events, want at least 20", len(directory))
	}

	seen := make(map[string]bool)
	for _, e := range directory {
		if e.ID == "" {
			t.Errorf("event %q has empty ID", e.Title)
		}
		if seen[e.ID] {
			t.Errorf("duplicate event ID %q", e.ID)
		}
		seen[e.ID] = true
		if e.Title == "" || e.Venue == "" || e.Area == "" {
			t.Errorf("event %q is missing fields: %+v", e.Title, e)
		}
		if e.DateTime.Before(now.AddDate(0, 0, -1)) {
			t.Errorf("event %q scheduled in the past: %v", e.Title, e.DateTime)
		}
	}
}

func TestEventID(t *testing.T) {
	tests := []struct {
		title    string
		venue    string
		expected string
	}{
		{"Jazz Night", "The Blue Marlin", "jazz-night@the-blue-marlin"},
		{"Reggae & Rum", "West Bay Beach Bar", "reggae--rum@west-bay-beach-bar"},
	}

	for _, tt := range tests {
		if got := eventID(tt.title, tt.venue); got != tt.expected {
			t.Errorf("eventID(%q, %q) = %q, want %q", tt.title, tt.venue, got, tt.expected)
		}
	}

	if eventID("Jazz Night", "The Blue Marlin") != eventID("Jazz Night", "The Blue Marlin") {
		t.Error("eventID should be stable across calls")
	}
}

func TestEventsAreSortedByTime(t *testing.T) {
	m := newTestManager()
	all := m.Events()

	for i := 1; i < len(all); i++ {
		if all[i].DateTime.Before(all[i-1].DateTime) {
			t.Fatalf("events out of order at %d: %v after %v", i, all[i].DateTime, all[i-1].DateTime)
		}
	}
}

func TestUpcomingExcludesPastDays(t *testing.T) {
	m := newTestManager()
	tomorrow := time.Now().AddDate(0, 0, 1)

	for _, e := range m.Upcoming(tomorrow) {
		if e.DateTime.Before(time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())) {
			t.Errorf("Upcoming() returned event before cutoff: %v", e.DateTime)
		}
	}
}

func TestSearch(t *testing.T) {
	m := newTestManager()

	tests := []struct {
		query   string
		wantHit string
	}{
		{"jazz", "Jazz Night"},
		{"SUNDOWNERS", "Acoustic Sunset"},
		{"mariachi", "Taco Tuesday Live"},
		{"sandy bay", "Karaoke Night"},
	}

	for _, tt := range tests {
		results := m.Search(tt.query)
		if len(results) == 0 {
			t.Errorf("Search(%q) returned nothing", tt.query)
			continue
		}
		found := false
		for _, e := range results {
			if e.Title == tt.wantHit {
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
	if len(m.Search("")) != len(m.Events()) {
		t.Error("empty Search should return everything")
	}
}

func TestByArea(t *testing.T) {
	m := newTestManager()

	westEnd := m.ByArea("west end")
	if len(westEnd) == 0 {
		t.Fatal("ByArea(west end) returned nothing")
	}
	for _, e := range westEnd {
		if e.Area != "West End" {
			t.Errorf("ByArea(west end) returned event in %q", e.Area)
		}
	}
}

func TestToggleFavorite(t *testing.T) {
	m := newTestManager()
	id := m.Events()[0].ID

	if m.IsFavorite(id) {
		t.Fatal("event should not start as favorite")
	}
	if !m.ToggleFavorite(id) {
		t.Error("first toggle should report favorited")
	}
	if !m.IsFavorite(id) {
		t.Error("event should be a favorite after toggle")
	}

	favs := m.Favorites()
	if len(favs) != 1 || favs[0].ID != id {
		t.Errorf("Favorites() = %v, want the toggled event", favs)
	}
	if ids := m.FavoriteIDs(); len(ids) != 1 || ids[0] != id {
		t.Errorf("FavoriteIDs() = %v", ids)
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
	id := base.Events()[0].ID

	m := NewManager(nil, []string{id})
	if !m.IsFavorite(id) {
		t.Error("favorite seeded at construction should be set")
	}
}

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<h3>Jazz Night</h3>", "Jazz Night"},
		{"  <p>Rum &amp; Reggae</p>  ", "Rum & Reggae"},
		{"Tom&#39;s &quot;Band&quot;&nbsp;Live", `Tom's "Band" Live`},
		{"plain text", "plain text"},
	}

	for _, tt := range tests {
		if got := stripHTMLTags(tt.input); got != tt.expected {
			t.Errorf("stripHTMLTags(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseEvents(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

	html := `
<html><body>
<h3>Jazz Night</h3>
<p class="venue">The Blue Marlin</p>
<h4>Open Mic</h4>
<p class="location">Sundowners</p>
</body></html>`

	parsed := parseEvents(html, now)
	if len(parsed) != 2 {
		t.Fatalf("parseEvents() returned %d events, want 2", len(parsed))
	}
	if parsed[0].Title != "Jazz Night" || parsed[0].Venue != "The Blue Marlin" {
		t.Errorf("first event = %+v", parsed[0])
	}
	if parsed[1].Title != "Open Mic" || parsed[1].Venue != "Sundowners" {
		t.Errorf("second event = %+v", parsed[1])
	}
}

func TestParseEventsEmptyPage(t *testing.T) {
	if got := parseEvents("<html><body>Loading Schedule . . .</body></html>", time.Now()); len(got) != 0 {
		t.Errorf("parseEvents() on empty page = %v, want none", got)
	}
}

func TestParseDateTimeFallsBackToSaturday(t *testing.T) {
	// A Thursday
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

	got := parseDateTime("", "", now)
	if got.Weekday() != time.Saturday {
		t.Errorf("fallback weekday = %v, want Saturday", got.Weekday())
	}
	if got.Before(now) {
		t.Errorf("fallback date %v is before now", got)
	}
}
