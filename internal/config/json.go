package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/photostudio/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// specified in seconds to keep the file format simple.
type JsonConfig struct {
	DatabaseFile          string `json:"database_file"`
	CacheDir              string `json:"cache_dir"`
	LogLevel              string `json:"log_level"`
	FalAPIKey             string `json:"fal_api_key"`
	FalBaseURL            string `json:"fal_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file is named, nothing happens. Empty fields in the
// file leave the existing value untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.CacheDir != "" {
		cfg.CacheDir = jc.CacheDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.FalAPIKey != "" {
		cfg.FalAPIKey = jc.FalAPIKey
	}
	if jc.FalBaseURL != "" {
		cfg.FalBaseURL = jc.FalBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
}
