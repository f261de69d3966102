// Package events manages the island music scene directory.
package events

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/bluewaveradio/bluewave-cli/internal/cache"
	"github.com/bluewaveradio/bluewave-cli/internal/config"
)

const (
	requestTimeout = 30 * time.Second
	cacheKey       = "music-events"
)

// MusicEvent is a single live-music listing.
type MusicEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Venue       string    `json:"venue"`
	DateTime    time.Time `json:"dateTime"`
	Description string    `json:"description"`
	Area        string    `json:"area"`
	Genre       string    `json:"genre"`
	Performer   string    `json:"performer"`
}

// FormattedDate renders the event time for display.
func (e MusicEvent) FormattedDate() string {
	return e.DateTime.Format("Mon, Jan 2 at 3:04 PM")
}

// DayOfWeek returns the full weekday name of the event.
func (e MusicEvent) DayOfWeek() string {
	return e.DateTime.Format("Monday")
}

// eventID builds a stable identifier so favorites survive refreshes.
func eventID(title, venue string) string {
	slug := strings.ToLower(title + "@" + venue)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '@':
			return r
		case r == ' ':
			return '-'
		default:
			return -1
		}
	}, slug)
}

// Manager fetches, caches, and filters music events.
type Manager struct {
	client *resty.Client
	cache  *cache.Cache

	mu          sync.RWMutex
	events      []MusicEvent
	favorites   map[string]bool
	lastUpdated time.Time
}

// NewManager creates an event manager seeded with the given favorite
// IDs. Cached listings are loaded when available, otherwise the
// built-in directory is used until a fetch succeeds.
func NewManager(blobCache *cache.Cache, favoriteIDs []string) *Manager {
	m := &Manager{
		client:    resty.New().SetBaseURL(config.MusicSceneURL).SetTimeout(requestTimeout),
		cache:     blobCache,
		favorites: make(map[string]bool),
	}
	for _, id := range favoriteIDs {
		m.favorites[id] = true
	}

	if blobCache != nil {
		var cached []MusicEvent
		if blobCache.GetJSON(cacheKey, &cached) && len(cached) > 0 {
			m.events = cached
			m.lastUpdated = blobCache.LastUpdated(cacheKey)
			return m
		}
	}
	m.events = placeholderEvents(time.Now())
	return m
}

// Fetch pulls the listing page and replaces the directory. When the
// page yields nothing usable the built-in directory is used instead.
func (m *Manager) Fetch() error {
	resp, err := m.client.R().Get("")
	if err != nil {
		return fmt.Errorf("failed to fetch music events: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("music scene returned status %d: %s", resp.StatusCode(), resp.Status())
	}

	now := time.Now()
	parsed := parseEvents(string(resp.Body()), now)
	if len(parsed) == 0 {
		log.Debug().Msg("No events parsed from listing page, using built-in directory")
		parsed = placeholderEvents(now)
	}

	m.mu.Lock()
	m.events = parsed
	m.lastUpdated = now
	m.mu.Unlock()

	if m.cache != nil {
		if err := m.cache.SaveJSON(cacheKey, parsed); err != nil {
			log.Debug().Err(err).Msg("Failed to cache music events")
		}
	}
	return nil
}

// Events returns every listing ordered by start time.
func (m *Manager) Events() []MusicEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedCopy(m.events)
}

// Upcoming returns listings starting at or after the beginning of the
// given day, soonest first.
func (m *Manager) Upcoming(now time.Time) []MusicEvent {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []MusicEvent
	for _, e := range m.events {
		if !e.DateTime.Before(startOfDay) {
			out = append(out, e)
		}
	}
	return sortedCopy(out)
}

// Search filters listings by a case-insensitive substring across
// title, venue, performer, genre, and area.
func (m *Manager) Search(query string) []MusicEvent {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.Events()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []MusicEvent
	for _, e := range m.events {
		haystack := strings.ToLower(e.Title + " " + e.Venue + " " + e.Performer + " " + e.Genre + " " + e.Area)
		if strings.Contains(haystack, query) {
			out = append(out, e)
		}
	}
	return sortedCopy(out)
}

// ByArea returns listings in the named island area.
func (m *Manager) ByArea(area string) []MusicEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []MusicEvent
	for _, e := range m.events {
		if strings.EqualFold(e.Area, area) {
			out = append(out, e)
		}
	}
	return sortedCopy(out)
}

// ToggleFavorite flips the favorite flag for an event ID and reports
// the new state.
func (m *Manager) ToggleFavorite(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.favorites[id] {
		delete(m.favorites, id)
		return false
	}
	m.favorites[id] = true
	return true
}

// IsFavorite reports whether an event ID is marked as a favorite.
func (m *Manager) IsFavorite(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.favorites[id]
}

// Favorites returns the favorited listings, soonest first.
func (m *Manager) Favorites() []MusicEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []MusicEvent
	for _, e := range m.events {
		if m.favorites[e.ID] {
			out = append(out, e)
		}
	}
	return sortedCopy(out)
}

// FavoriteIDs returns the favorite set for persistence.
func (m *Manager) FavoriteIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.favorites))
	for id := range m.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LastUpdated reports when the directory was last refreshed.
func (m *Manager) LastUpdated() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastUpdated
}

func sortedCopy(events []MusicEvent) []MusicEvent {
	out := make([]MusicEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateTime.Before(out[j].DateTime)
	})
	return out
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

var htmlEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
	"&lt;", "<",
	"&gt;", ">",
)

func stripHTMLTags(html string) string {
	return strings.TrimSpace(htmlEntities.Replace(htmlTagPattern.ReplaceAllString(html, "")))
}

// parseEvents scans the listing page line by line, picking up heading
// tags as titles and venue/time hints from nearby lines. The page has
// no stable markup so this is deliberately loose.
func parseEvents(html string, now time.Time) []MusicEvent {
	var parsed []MusicEvent
	var title, venue, timeHint string

	flush := func() {
		if title == "" || venue == "" {
			return
		}
		when := parseDateTime("", timeHint, now)
		parsed = append(parsed, MusicEvent{
			ID:          eventID(title, venue),
			Title:       title,
			Venue:       venue,
			DateTime:    when,
			Description: "Live music at " + venue,
			Area:        "West End",
			Genre:       "Live Music",
		})
		title, venue, timeHint = "", "", ""
	}

	for _, line := range strings.Split(html, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)

		switch {
		case strings.Contains(lower, "<h3") || strings.Contains(lower, "<h4"):
			flush()
			title = stripHTMLTags(trimmed)
		case strings.Contains(lower, "venue") || strings.Contains(lower, "location"):
			if v := stripHTMLTags(trimmed); v != "" {
				venue = v
			}
		case strings.Contains(lower, "time") || strings.Contains(lower, "pm") || strings.Contains(lower, "am"):
			if t := stripHTMLTags(trimmed); t != "" {
				timeHint = t
			}
		}
		if title != "" && venue != "" {
			flush()
		}
	}
	flush()
	return parsed
}

// parseDateTime resolves a listing's date text, falling back to the
// next Saturday evening when the text is unusable.
func parseDateTime(dateStr, _ string, now time.Time) time.Time {
	if dateStr != "" {
		if parsed, err := time.Parse("Monday, January 2", dateStr); err == nil {
			return time.Date(now.Year(), parsed.Month(), parsed.Day(), 19, 0, 0, 0, now.Location())
		}
	}

	daysUntilSaturday := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	next := now.AddDate(0, 0, daysUntilSaturday)
	return time.Date(next.Year(), next.Month(), next.Day(), 19, 0, 0, 0, now.Location())
}
