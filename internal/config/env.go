package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDatabase  = "WEIGHTKEEPER_DB"
	EnvLogLevel  = "WEIGHTKEEPER_LOG_LEVEL"
	EnvLogFormat = "WEIGHTKEEPER_LOG_FORMAT"
)

var dotEnvFile = ".env"

// parseEnv overlays cfg with environment variables. Variables from envFile
// are loaded first but never override ones already set in the process.
// A missing envFile is not an error.
func parseEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvDatabase); ok && v != "" {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}

	return nil
}
