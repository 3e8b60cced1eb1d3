// Package config loads runtime configuration for the weightkeeper CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see Defaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables, optionally seeded from a .env file:
//     WEIGHTKEEPER_DB, WEIGHTKEEPER_LOG_LEVEL, WEIGHTKEEPER_LOG_FORMAT.
//  4. Command-line flags -d, -l and -t.
//
// The JSON file uses timex.Duration for the busy timeout:
//
//	{
//	  "database_dsn": "weightkeeper.db",
//	  "busy_timeout": "5s",
//	  "bcrypt_cost": 12,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config

import (
	"time"

	"github.com/dmitrijs2005/weightkeeper/internal/cryptox"
)

// Config holds runtime settings.
type Config struct {
	// DatabaseDSN is a SQLite file path or a "file:" URI.
	DatabaseDSN string
	// BusyTimeout is how long SQLite waits on a locked database.
	BusyTimeout time.Duration
	BcryptCost  int
	LogLevel    string
	LogFormat   string
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		DatabaseDSN: "weightkeeper.db",
		BusyTimeout: 5 * time.Second,
		BcryptCost:  cryptox.DefaultCost,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load builds a Config from defaults, the JSON file named in args, the
// environment and finally the flags in args. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := Defaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}
