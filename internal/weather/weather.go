// Package weather fetches current conditions for the island from the
// OpenWeatherMap API.
package weather

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/bluewaveradio/bluewave-cli/internal/cache"
	"github.com/bluewaveradio/bluewave-cli/internal/config"
)

const (
	defaultBaseURL = "https://api.openweathermap.org"
	requestTimeout = 30 * time.Second

	// RefreshInterval is how often conditions are re-fetched.
	RefreshInterval = 30 * time.Minute

	defaultAPIKey = "f55f2adcf1dce3b4e259df0ab8d98e8a"
)

// Weather is the decoded current-conditions report.
type Weather struct {
	Temperature float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Condition   string  `json:"main"`
	ConditionID int     `json:"id"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Glyph returns a terminal glyph for the weather condition, keyed on
// the OpenWeatherMap condition ID ranges.
func (w Weather) Glyph() string {
	switch {
	case w.ConditionID >= 200 && w.ConditionID <= 232:
		return "⛈" // thunderstorm
	case w.ConditionID >= 300 && w.ConditionID <= 321:
		return "🌦" // drizzle
	case w.ConditionID >= 500 && w.ConditionID <= 531:
		return "🌧" // rain
	case w.ConditionID >= 600 && w.ConditionID <= 622:
		return "🌨" // snow
	case w.ConditionID >= 701 && w.ConditionID <= 781:
		return "🌫" // mist, fog
	case w.ConditionID == 800:
		return "☀" // clear
	case w.ConditionID == 801:
		return "🌤" // few clouds
	case w.ConditionID >= 802 && w.ConditionID <= 804:
		return "☁" // clouds
	default:
		return "☁"
	}
}

// wire format of the /data/2.5/weather endpoint
type conditionsResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Conditions []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (r conditionsResponse) weather() Weather {
	w := Weather{
		Temperature: r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		Humidity:    r.Main.Humidity,
		WindSpeed:   r.Wind.Speed,
		Condition:   "Clear",
		ConditionID: 800,
	}
	if len(r.Conditions) > 0 {
		w.Condition = r.Conditions[0].Main
		w.ConditionID = r.Conditions[0].ID
	}
	return w
}

// Client is the HTTP client for the OpenWeatherMap API.
type Client struct {
	client *resty.Client
	apiKey string
}

// NewClient creates a new OpenWeatherMap client with sensible defaults.
// The API key comes from OPENWEATHER_API_KEY when set.
func NewClient() *Client {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		apiKey = defaultAPIKey
	}
	return &Client{
		client: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(requestTimeout),
		apiKey: apiKey,
	}
}

// SetBaseURL overrides the API endpoint.
func (c *Client) SetBaseURL(url string) {
	c.client.SetBaseURL(url)
}

// CurrentConditions fetches conditions for a coordinate pair. units is
// "metric" or "imperial".
func (c *Client) CurrentConditions(lat, lon float64, units string) (Weather, error) {
	resp, err := c.client.R().
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%.4f", lat),
			"lon":   fmt.Sprintf("%.4f", lon),
			"units": units,
			"appid": c.apiKey,
		}).
		Get("/data/2.5/weather")
	if err != nil {
		return Weather{}, fmt.Errorf("failed to fetch weather: %w", err)
	}

	if !resp.IsSuccess() {
		return Weather{}, fmt.Errorf("weather api returned status %d: %s", resp.StatusCode(), resp.Status())
	}

	var decoded conditionsResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return Weather{}, fmt.Errorf("failed to parse weather response: %w", err)
	}

	return decoded.weather(), nil
}

// Manager holds the current conditions for the station's island and
// refreshes them periodically.
type Manager struct {
	client *Client
	cache  *cache.Cache

	mu          sync.RWMutex
	current     *Weather
	lastUpdated time.Time
	useMetric   bool

	refreshTicker *time.Ticker
	stopRefresh   chan struct{}
	onRefresh     func(Weather)
}

// NewManager creates a weather manager. A nil cache disables the
// offline snapshot.
func NewManager(client *Client, blobCache *cache.Cache, useMetric bool) *Manager {
	m := &Manager{
		client:    client,
		cache:     blobCache,
		useMetric: useMetric,
	}

	if blobCache != nil {
		var cached Weather
		if blobCache.GetJSON(m.cacheKey(), &cached) {
			m.current = &cached
			m.lastUpdated = blobCache.LastUpdated(m.cacheKey())
		}
	}
	return m
}

func (m *Manager) cacheKey() string {
	if m.useMetric {
		return "weather-metric"
	}
	return "weather-imperial"
}

func (m *Manager) units() string {
	if m.useMetric {
		return "metric"
	}
	return "imperial"
}

// Fetch retrieves fresh conditions for the station coordinates.
func (m *Manager) Fetch() error {
	m.mu.RLock()
	units := m.units()
	key := m.cacheKey()
	m.mu.RUnlock()

	w, err := m.client.CurrentConditions(config.WeatherLatitude, config.WeatherLongitude, units)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = &w
	m.lastUpdated = time.Now()
	m.mu.Unlock()

	if m.cache != nil {
		if err := m.cache.SaveJSON(key, w); err != nil {
			log.Debug().Err(err).Msg("Failed to cache weather")
		}
	}
	return nil
}

// Current returns the latest conditions, or false if none are known.
func (m *Manager) Current() (Weather, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return Weather{}, false
	}
	return *m.current, true
}

// LastUpdated reports when conditions were last fetched.
func (m *Manager) LastUpdated() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastUpdated
}

// UseMetric reports the active unit system.
func (m *Manager) UseMetric() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.useMetric
}

// ToggleUnits switches between Celsius and Fahrenheit and refetches in
// the background.
func (m *Manager) ToggleUnits() {
	m.mu.Lock()
	m.useMetric = !m.useMetric
	m.current = nil
	m.mu.Unlock()

	go func() {
		if err := m.Fetch(); err != nil {
			log.Warn().Err(err).Msg("Weather refresh after unit toggle failed")
		}
	}()
}

// FormattedTemperature renders the temperature with its unit, or "--"
// when no conditions are known.
func (m *Manager) FormattedTemperature() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return "--"
	}
	unit := "°F"
	if m.useMetric {
		unit = "°C"
	}
	return fmt.Sprintf("%d%s", int(math.Round(m.current.Temperature)), unit)
}

// StartPeriodicRefresh refetches conditions on an interval. The
// optional callback fires after each successful refresh.
func (m *Manager) StartPeriodicRefresh(interval time.Duration, callback func(Weather)) {
	m.StopPeriodicRefresh()

	m.mu.Lock()
	m.onRefresh = callback
	m.stopRefresh = make(chan struct{})
	m.refreshTicker = time.NewTicker(interval)
	ticker := m.refreshTicker
	stopCh := m.stopRefresh
	m.mu.Unlock()

	go func() {
		for {
			select {
			case <-ticker.C:
				m.refreshInBackground()
			case <-stopCh:
				ticker.Stop()
				return
			}
		}
	}()

	log.Debug().Dur("interval", interval).Msg("Started periodic weather refresh")
}

// StopPeriodicRefresh stops the refresh loop if one is running.
func (m *Manager) StopPeriodicRefresh() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopRefresh != nil {
		close(m.stopRefresh)
		m.stopRefresh = nil
	}
}

func (m *Manager) refreshInBackground() {
	if err := m.Fetch(); err != nil {
		log.Warn().Err(err).Msg("Background weather refresh failed, keeping cached data")
		return
	}

	m.mu.RLock()
	w := m.current
	callback := m.onRefresh
	m.mu.RUnlock()

	if callback != nil && w != nil {
		callback(*w)
	}
}
