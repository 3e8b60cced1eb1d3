package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/weightkeeper/internal/flagx"
)

// parseFlags populates Config from command-line flags:
//
//	-d string     database file or DSN
//	-l string     log level (debug, info, warn, error)
//	-t duration   SQLite busy timeout, e.g. 2s
//
// Other arguments, such as -c, are filtered out before parsing.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-d", "-l", "-t"})

	fs := flag.NewFlagSet("weightkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database file or DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.BusyTimeout, "t", cfg.BusyTimeout, "sqlite busy timeout")

	return fs.Parse(filtered)
}
