// Package dining manages the island restaurant directory.
package dining

import (
	"fmt"
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
	cacheKey       = "restaurants"
)

// IslandArea names a part of the island.
type IslandArea string

const (
	WestEnd       IslandArea = "West End"
	WestBay       IslandArea = "West Bay"
	SandyBay      IslandArea = "Sandy Bay"
	FrenchHarbour IslandArea = "French Harbour"
	OakRidge      IslandArea = "Oak Ridge"
	EastEnd       IslandArea = "East End"
)

// Areas lists every island area in west-to-east order.
func Areas() []IslandArea {
	return []IslandArea{WestEnd, WestBay, SandyBay, FrenchHarbour, OakRidge, EastEnd}
}

// Restaurant is a single directory listing.
type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Area        IslandArea `json:"area"`
	Cuisine     []string   `json:"cuisine"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	FacebookURL string     `json:"facebookUrl,omitempty"`
	Sponsored   bool       `json:"sponsored"`
}

// CuisineString joins the cuisine tags for display.
func (r Restaurant) CuisineString() string {
	return strings.Join(r.Cuisine, ", ")
}

// HasContact reports whether a phone number or email is listed.
func (r Restaurant) HasContact() bool {
	return r.Phone != "" || r.Email != ""
}

// restaurantID builds a stable identifier so favorites survive refreshes.
func restaurantID(name string, area IslandArea) string {
	slug := strings.ToLower(name + "@" + string(area))
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

// Manager fetches, caches, and filters restaurant listings.
type Manager struct {
	client *resty.Client
	cache  *cache.Cache

	mu          sync.RWMutex
	restaurants []Restaurant
	favorites   map[string]bool
	lastUpdated time.Time
}

// NewManager creates a restaurant manager seeded with the given
// favorite IDs. Cached listings are loaded when available, otherwise
// the built-in directory is used until a fetch succeeds.
func NewManager(blobCache *cache.Cache, favoriteIDs []string) *Manager {
	m := &Manager{
		client:    resty.New().SetBaseURL(config.DineOutURL).SetTimeout(requestTimeout),
		cache:     blobCache,
		favorites: make(map[string]bool),
	}
	for _, id := range favoriteIDs {
		m.favorites[id] = true
	}

	if blobCache != nil {
		var cached []Restaurant
		if blobCache.GetJSON(cacheKey, &cached) && len(cached) > 0 {
			m.restaurants = cached
			m.lastUpdated = blobCache.LastUpdated(cacheKey)
			return m
		}
	}
	m.restaurants = placeholderRestaurants()
	return m
}

// Fetch pulls the directory page and replaces the listing. The page
// carries no machine-readable structure today, so the built-in
// directory fills in whenever parsing comes up empty.
func (m *Manager) Fetch() error {
	resp, err := m.client.R().Get("")
	if err != nil {
		return fmt.Errorf("failed to fetch restaurants: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("dine out returned status %d: %s", resp.StatusCode(), resp.Status())
	}

	parsed := parseRestaurants(string(resp.Body()))
	if len(parsed) == 0 {
		log.Debug().Msg("No restaurants parsed from directory page, using built-in directory")
		parsed = placeholderRestaurants()
	}

	m.mu.Lock()
	m.restaurants = parsed
	m.lastUpdated = time.Now()
	m.mu.Unlock()

	if m.cache != nil {
		if err := m.cache.SaveJSON(cacheKey, parsed); err != nil {
			log.Debug().Err(err).Msg("Failed to cache restaurants")
		}
	}
	return nil
}

// parseRestaurants scans the directory page for listings. The page
// renders its listing client side, so there is nothing stable to
// scrape yet and the caller falls back to the built-in directory.
func parseRestaurants(string) []Restaurant {
	return nil
}

// Restaurants returns every listing, sponsored entries first and then
// alphabetical by name.
func (m *Manager) Restaurants() []Restaurant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedCopy(m.restaurants)
}

// ByArea returns listings in the named island area.
func (m *Manager) ByArea(area IslandArea) []Restaurant {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Restaurant
	for _, r := range m.restaurants {
		if r.Area == area {
			out = append(out, r)
		}
	}
	return sortedCopy(out)
}

// Search filters listings by a case-insensitive substring across name,
// cuisine tags, area, and address.
func (m *Manager) Search(query string) []Restaurant {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.Restaurants()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Restaurant
	for _, r := range m.restaurants {
		haystack := strings.ToLower(r.Name + " " + strings.Join(r.Cuisine, " ") + " " + string(r.Area) + " " + r.Address)
		if strings.Contains(haystack, query) {
			out = append(out, r)
		}
	}
	return sortedCopy(out)
}

// ToggleFavorite flips the favorite flag for a restaurant ID and
// reports the new state.
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

// IsFavorite reports whether a restaurant ID is marked as a favorite.
func (m *Manager) IsFavorite(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.favorites[id]
}

// Favorites returns the favorited listings.
func (m *Manager) Favorites() []Restaurant {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Restaurant
	for _, r := range m.restaurants {
		if m.favorites[r.ID] {
			out = append(out, r)
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

func sortedCopy(restaurants []Restaurant) []Restaurant {
	out := make([]Restaurant, len(restaurants))
	copy(out, restaurants)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sponsored != out[j].Sponsored {
			return out[i].Sponsored
		}
		return out[i].Name < out[j].Name
	})
	return out
}
