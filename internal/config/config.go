// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"drone-cover/core/rating"
	"drone-cover/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Rating contains the rating engine coefficients
	Rating rating.Params `json:"rating"`

	// Placement contains placement details and flat charges
	Placement PlacementConfig `json:"placement"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PlacementConfig contains the parties to the quote and the flat
// per-unit charges used by capacity-capped fleet pricing
type PlacementConfig struct {
	// Insured is the policyholder name
	Insured string `json:"insured"`

	// Underwriter is the underwriter name
	Underwriter string `json:"underwriter"`

	// Broker is the placing broker
	Broker string `json:"broker"`

	// Brokerage is the broker's share of gross premium
	Brokerage decimal.Decimal `json:"brokerage"`

	// UninsuredDroneCharge is the flat charge per declared drone unit
	// beyond the schedule
	UninsuredDroneCharge decimal.Decimal `json:"uninsured_drone_charge"`

	// ExcessCameraCharge is the flat charge per camera unit in excess
	// of the drone fleet
	ExcessCameraCharge decimal.Decimal `json:"excess_camera_charge"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors in terminal output
	NoColor bool `json:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Rating:  rating.DefaultParams(),
		Placement: PlacementConfig{
			Insured:              "Drones R Us",
			Underwriter:          "Michael",
			Broker:               "Aon",
			Brokerage:            decimal.NewFromFloat(0.3),
			UninsuredDroneCharge: decimal.NewFromInt(150),
			ExcessCameraCharge:   decimal.NewFromInt(50),
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
