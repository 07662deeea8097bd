package config

import (
	"encoding/json"
	"os"

	"github.com/fcurrie/ledsign-golang/internal/types"
)

// Config represents the application configuration
type Config struct {
	Display   types.DisplayConfig   `json:"display"`
	Scroll    types.ScrollConfig    `json:"scroll"`
	Feed      types.FeedConfig      `json:"feed"`
	Discovery types.DiscoveryConfig `json:"discovery"`
}

// LoadConfig loads the configuration from a file
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Display: types.DisplayConfig{
			Width:      64,
			Height:     8,
			Brightness: 64,
			Backend:    "term",
		},
		Scroll: types.ScrollConfig{
			TickIntervalMs:   50,
			LookaheadColumns: 60,
		},
		Feed: types.FeedConfig{
			Host:              "localhost",
			Port:              8181,
			ReconnectInterval: 5,
		},
		Discovery: types.DiscoveryConfig{
			Port:    8181,
			Timeout: 2,
		},
	}
}
