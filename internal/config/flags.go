package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/photostudio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local database file
//	-l string   log level (debug/info/warn/error)
//	-k string   generation provider API key
//
// Args are pre-filtered with flagx.FilterArgs so flags owned by other
// components (like -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "path to the local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.FalAPIKey, "k", cfg.FalAPIKey, "generation provider API key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
