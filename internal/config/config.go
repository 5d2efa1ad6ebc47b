// Package config loads the planetarium configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete planetarium configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Catalog CatalogConfig `yaml:"catalog"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig describes the observing site.
type SiteConfig struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// CatalogConfig selects the star catalog source. An empty path means
// the embedded bright-star catalog.
type CatalogConfig struct {
	Path     string  `yaml:"path"`
	MaxStars int     `yaml:"max_stars"`
	LimitMag float64 `yaml:"limit_mag"`
}

// ViewConfig contains camera and rendering settings.
type ViewConfig struct {
	FOVDeg float64 `yaml:"fov_deg"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Name:      "Greenwich",
			Latitude:  51.4769,
			Longitude: -0.0005,
		},
		Catalog: CatalogConfig{
			MaxStars: 0, // unlimited
			LimitMag: 6.5,
		},
		View: ViewConfig{
			FOVDeg: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, filling unset fields with
// defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that loaded values are usable.
func (c *Config) Validate() error {
	if c.Site.Latitude < -90 || c.Site.Latitude > 90 {
		return fmt.Errorf("site latitude %v out of range [-90, 90]", c.Site.Latitude)
	}
	if c.Site.Longitude < -180 || c.Site.Longitude > 180 {
		return fmt.Errorf("site longitude %v out of range [-180, 180]", c.Site.Longitude)
	}
	if c.View.FOVDeg <= 0 || c.View.FOVDeg >= 180 {
		return fmt.Errorf("view fov %v out of range (0, 180)", c.View.FOVDeg)
	}
	if c.Catalog.MaxStars < 0 {
		return fmt.Errorf("catalog max_stars must not be negative")
	}
	return nil
}
