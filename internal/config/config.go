// Package config loads runtime settings for the PhotoStudio CLI.
//
// Sources are applied in order: defaults, then a JSON file (if given via
// -c/-config), then command-line flags. Later sources take precedence.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the studio application.
type Config struct {
	// DatabaseFile is the path of the local SQLite database holding the user
	// directory, the session slot, and media blobs.
	DatabaseFile string

	// CacheDir is where transient display handles are materialized.
	CacheDir string

	// LogLevel is one of debug/info/warn/error.
	LogLevel string

	// FalAPIKey authenticates requests to the generation provider.
	FalAPIKey string

	// FalBaseURL overrides the provider endpoint (useful for tests).
	FalBaseURL string

	// RequestTimeout bounds provider image requests. Video generation uses
	// its own, much longer, per-call deadline.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseFile = "studio.db"
	c.CacheDir = ".studio-cache"
	c.LogLevel = "info"
	c.FalAPIKey = os.Getenv("FAL_KEY")
	c.FalBaseURL = ""
	c.RequestTimeout = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
