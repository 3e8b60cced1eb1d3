package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/weightkeeper/internal/flagx"
	"github.com/dmitrijs2005/weightkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Zero values leave
// the corresponding Config field untouched.
type JsonConfig struct {
	DatabaseDSN string         `json:"database_dsn"`
	BusyTimeout timex.Duration `json:"busy_timeout"`
	BcryptCost  int            `json:"bcrypt_cost"`
	LogLevel    string         `json:"log_level"`
	LogFormat   string         `json:"log_format"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.BusyTimeout.Duration > 0 {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
	if jc.BcryptCost != 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}

	return nil
}
