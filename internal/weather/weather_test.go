package weather

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bluewaveradio/bluewave-cli/internal/cache"
)

const sampleResponse = `{
	"main": {"temp": 29.4, "feels_like": 33.1, "humidity": 74},
	"weather": [{"id": 801, "main": "Clouds", "description": "few clouds", "icon": "02d"}],
	"wind": {"speed": 4.2}
}`

func setupTestServer(handler http.HandlerFunc) (*httptest.Server, *Client) {
	server := httptest.NewServer(handler)
	client := &Client{
		client: resty.New().SetBaseURL(server.URL),
		apiKey: "test-key",
	}
	return server, client
}

func TestCurrentConditions(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("Expected path /data/2.5/weather, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("units") != "metric" {
			t.Errorf("units = %q, want metric", q.Get("units"))
		}
		if q.Get("appid") != "test-key" {
			t.Errorf("appid = %q, want test-key", q.Get("appid"))
		}
		if q.Get("lat") != "16.3266" || q.Get("lon") != "-86.5375" {
			t.Errorf("coordinates = %s,%s", q.Get("lat"), q.Get("lon"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	})
	defer server.Close()

	weather, err := client.CurrentConditions(16.3266, -86.5375, "metric")
	if err != nil {
		t.Fatalf("CurrentConditions() error = %v", err)
	}

	if weather.Temperature != 29.4 {
		t.Errorf("Temperature = %v, want 29.4", weather.Temperature)
	}
	if weather.FeelsLike != 33.1 {
		t.Errorf("FeelsLike = %v, want 33.1", weather.FeelsLike)
	}
	if weather.Condition != "Clouds" {
		t.Errorf("Condition = %q, want Clouds", weather.Condition)
	}
	if weather.ConditionID != 801 {
		t.Errorf("ConditionID = %d, want 801", weather.ConditionID)
	}
	if weather.Humidity != 74 {
		t.Errorf("Humidity = %d, want 74", weather.Humidity)
	}
	if weather.WindSpeed != 4.2 {
		t.Errorf("WindSpeed = %v, want 4.2", weather.WindSpeed)
	}
}

func TestCurrentConditionsNoConditionList(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"main": {"temp": 28.0, "humidity": 60}, "weather": [], "wind": {"speed": 1.0}}`))
	})
	defer server.Close()

	weather, err := client.CurrentConditions(16.3266, -86.5375, "metric")
	if err != nil {
		t.Fatalf("CurrentConditions() error = %v", err)
	}

	if weather.Condition != "Clear" || weather.ConditionID != 800 {
		t.Errorf("empty condition list should default to Clear/800, got %q/%d", weather.Condition, weather.ConditionID)
	}
}

func TestCurrentConditionsServerError(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer server.Close()

	if _, err := client.CurrentConditions(16.3266, -86.5375, "metric"); err == nil {
		t.Error("expected error for 401 response")
	}
}

func TestCurrentConditionsInvalidJSON(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	defer server.Close()

	if _, err := client.CurrentConditions(16.3266, -86.5375, "metric"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		conditionID int
		expected    string
	}{
		{210, "⛈"},
		{310, "🌦"},
		{502, "🌧"},
		{601, "🌨"},
		{741, "🌫"},
		{800, "☀"},
		{801, "🌤"},
		{804, "☁"},
		{999, "☁"},
	}

	for _, tt := range tests {
		w := Weather{ConditionID: tt.conditionID}
		if got := w.Glyph(); got != tt.expected {
			t.Errorf("Glyph() for condition %d = %q, want %q", tt.conditionID, got, tt.expected)
		}
	}
}

func TestManagerFormattedTemperature(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleResponse))
	})
	defer server.Close()

	m := NewManager(client, nil, true)
	if got := m.FormattedTemperature(); got != "--" {
		t.Errorf("FormattedTemperature() before fetch = %q, want --", got)
	}

	if err := m.Fetch(); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if got := m.FormattedTemperature(); got != "29°C" {
		t.Errorf("FormattedTemperature() = %q, want 29°C", got)
	}

	if _, ok := m.Current(); !ok {
		t.Error("Current() should report conditions after a fetch")
	}
	if m.LastUpdated().IsZero() {
		t.Error("LastUpdated() should be set after a fetch")
	}
}

func TestManagerImperialUnit(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("units"); got != "imperial" {
			t.Errorf("units = %q, want imperial", got)
		}
		_, _ = w.Write([]byte(`{"main": {"temp": 84.6, "humidity": 70}, "weather": [{"id": 800, "main": "Clear"}], "wind": {"speed": 5}}`))
	})
	defer server.Close()

	m := NewManager(client, nil, false)
	if err := m.Fetch(); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if got := m.FormattedTemperature(); got != "85°F" {
		t.Errorf("FormattedTemperature() = %q, want 85°F", got)
	}
}

func TestFetchKeepsRequestedUnitKey(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	blobCache, err := cache.NewCache()
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	var m *Manager
	server, client := setupTestServer(func(w http.ResponseWriter, _ *http.Request) {
		// The unit system flips while the request is in flight.
		m.mu.Lock()
		m.useMetric = false
		m.mu.Unlock()
		_, _ = w.Write([]byte(sampleResponse))
	})
	defer server.Close()

	m = NewManager(client, blobCache, true)
	if err := m.Fetch(); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	var got Weather
	if !blobCache.GetJSON("weather-metric", &got) {
		t.Error("metric reading not cached under weather-metric")
	}
	if blobCache.GetJSON("weather-imperial", &got) {
		t.Error("metric reading cached under weather-imperial")
	}
}

func TestManagerPeriodicRefresh(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleResponse))
	})
	defer server.Close()

	m := NewManager(client, nil, true)

	refreshed := make(chan Weather, 1)
	m.StartPeriodicRefresh(20*time.Millisecond, func(w Weather) {
		select {
		case refreshed <- w:
		default:
		}
	})
	defer m.StopPeriodicRefresh()

	select {
	case w := <-refreshed:
		if w.Temperature != 29.4 {
			t.Errorf("refreshed Temperature = %v, want 29.4", w.Temperature)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("periodic refresh never fired")
	}
}
