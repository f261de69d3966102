package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Volume != DefaultVolume {
		t.Errorf("DefaultConfig().Volume = %v, want %v", cfg.Volume, DefaultVolume)
	}

	if !cfg.UseMetric {
		t.Error("DefaultConfig().UseMetric = false, want true")
	}

	if cfg.Autostart != false {
		t.Errorf("DefaultConfig().Autostart = %v, want false", cfg.Autostart)
	}
}

func TestConfigSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	testCfg := &Config{
		Volume:         0.4,
		UseMetric:      false,
		FavoriteEvents: []string{"full-moon-party"},
	}

	err := testCfg.Save()
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath := filepath.Join(tmpDir, ConfigDir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file was not created at %s", configPath)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loadedCfg.Volume != testCfg.Volume {
		t.Errorf("Load().Volume = %v, want %v", loadedCfg.Volume, testCfg.Volume)
	}

	if loadedCfg.UseMetric != testCfg.UseMetric {
		t.Errorf("Load().UseMetric = %v, want %v", loadedCfg.UseMetric, testCfg.UseMetric)
	}

	if len(loadedCfg.FavoriteEvents) != 1 || loadedCfg.FavoriteEvents[0] != "full-moon-party" {
		t.Errorf("Load().FavoriteEvents = %v, want [full-moon-party]", loadedCfg.FavoriteEvents)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Logf("Load() error (expected): %v", err)
	}

	if cfg.Volume != DefaultVolume {
		t.Errorf("Load() with non-existent file returned Volume = %v, want %v", cfg.Volume, DefaultVolume)
	}
}

func TestVolumeValidation(t *testing.T) {
	tests := []struct {
		name           string
		inputVolume    float64
		expectedVolume float64
	}{
		{"valid volume 0.5", 0.5, 0.5},
		{"valid volume 0", 0, 0},
		{"valid volume 1", 1, 1},
		{"negative volume", -0.2, 0},
		{"volume over 1", 1.5, 1},
		{"volume way over 1", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("HOME", tmpDir)

			testCfg := &Config{
				Volume: tt.inputVolume,
			}

			err := testCfg.Save()
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loadedCfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if loadedCfg.Volume != tt.expectedVolume {
				t.Errorf("Load().Volume = %v, want %v", loadedCfg.Volume, tt.expectedVolume)
			}
		})
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.5, 1.0},
		{-0.2, 0.0},
		{0.75, 0.75},
		{0, 0},
		{1, 1},
	}

	for _, tt := range tests {
		result := ClampVolume(tt.input)
		if result != tt.expected {
			t.Errorf("ClampVolume(%v) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

