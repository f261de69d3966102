package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName         = "Blue Wave Radio"
	AppTagline      = "Terminal radio for Roatan"
	AppDescription  = "A terminal client for 101.1 Blue Wave Radio Roatan"
	AppProjectURL   = "https://github.com/bluewaveradio/bluewave-cli"
	AppProjectShort = "github.com/bluewaveradio/bluewave-cli"
	AppStationURL   = "https://www.bluewaveradio.live"
	AppStationShort = "bluewaveradio.live"

	// Station identity, used as now-playing defaults when the stream
	// carries no metadata.
	StationName     = "101.1 Blue Wave Radio"
	StationLocation = "Roatan"

	// StreamURL is the station's single Shoutcast endpoint.
	StreamURL = "https://streaming.shoutcast.com/101-1-blue-wave-radio-roatan"

	// MusicSceneURL and DineOutURL are the directory pages scraped
	// (best-effort) for events and restaurants.
	MusicSceneURL = "https://www.bluewaveradio.live/roatanmusicscene"
	DineOutURL    = "https://www.dineoutroatan.com/"

	// Roatan coordinates for the weather widget.
	WeatherLatitude  = 16.3266
	WeatherLongitude = -86.5375

	ConfigDir      = ".config/bluewave"
	ConfigFileName = "config.yml"

	DefaultVolume = 0.75
	MinVolume     = 0.0
	MaxVolume     = 1.0

	// Remote transport skip steps in seconds.
	SkipForwardSeconds  = 30
	SkipBackwardSeconds = 10
)

// SleepTimerOptions are the selectable sleep timer durations in minutes.
// Zero means "off".
var SleepTimerOptions = []int{0, 15, 30, 45, 60}

// ClampVolume ensures volume is within the valid range [0.0, 1.0].
func ClampVolume(volume float64) float64 {
	if volume < MinVolume {
		return MinVolume
	}
	if volume > MaxVolume {
		return MaxVolume
	}
	return volume
}

// AppVersion can be overridden at build time using ldflags:
// go build -ldflags "-X github.com/bluewaveradio/bluewave-cli/internal/config.AppVersion=1.0.0"
var AppVersion = "dev"

type Theme struct {
	Background       string `yaml:"background"`
	Foreground       string `yaml:"foreground"`
	Borders          string `yaml:"borders"`
	Highlight        string `yaml:"highlight"`
	MutedVolume      string `yaml:"muted_volume"`
	HeaderBackground string `yaml:"header_background"`
	TabBackground    string `yaml:"tab_background"`
	TabForeground    string `yaml:"tab_foreground"`
	HelpBackground   string `yaml:"help_background"`
	HelpForeground   string `yaml:"help_foreground"`
	HelpHotkey       string `yaml:"help_hotkey"`
	SponsorTag       string `yaml:"sponsor_tag"`
	ModalBackground  string `yaml:"modal_background"`
}

type Config struct {
	Volume              float64  `yaml:"volume"`
	Autostart           bool     `yaml:"autostart"`
	UseMetric           bool     `yaml:"use_metric"`
	FavoriteEvents      []string `yaml:"favorite_events"`
	FavoriteRestaurants []string `yaml:"favorite_restaurants"`
	Theme               Theme    `yaml:"theme"`
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(home, ConfigDir, ConfigFileName)
	return configPath, nil
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Volume = ClampVolume(cfg.Volume)

	return cfg, nil
}

// Save writes the configuration to disk atomically using temp file + rename.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	tmpPath = "" // Prevent defer from removing the final file
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Volume:              DefaultVolume,
		Autostart:           false,
		UseMetric:           true,
		FavoriteEvents:      []string{},
		FavoriteRestaurants: []string{},
		Theme: Theme{
			Background:       "#10222e",
			Foreground:       "#a9c3d2",
			Borders:          "#34506b",
			Highlight:        "#4fd2e8",
			MutedVolume:      "#fe0702",
			HeaderBackground: "#133c52",
			TabBackground:    "#1c3a4c",
			TabForeground:    "#c8e4f0",
			HelpBackground:   "#17303f",
			HelpForeground:   "#93b2c4",
			HelpHotkey:       "#4fd2e8",
			SponsorTag:       "#1c3a4c",
			ModalBackground:  "#152b38",
		},
	}
}

func GetColor(colorStr string) tcell.Color {
	if colorStr == "" || colorStr == "default" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(colorStr)
}
