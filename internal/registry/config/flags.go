package config

import (
	"flag"

	"github.com/dmitrijs2005/clientdb/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-l string   log level (debug, info, warn, error)
//	-k          keep existing tables (skip the schema reset)
//
// Only these flags are parsed; args is filtered with flagx.FilterArgs so
// other layers (the -c file flag, cobra subcommands) do not collide.
func parseFlags(config *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-d", "-l", "-k"})

	fs := flag.NewFlagSet("clientdb", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.SkipReset, "k", config.SkipReset, "keep existing tables")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
