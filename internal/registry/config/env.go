package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDatabaseDSN = "CLIENTDB_DSN"
	EnvLogLevel    = "CLIENTDB_LOG_LEVEL"
	EnvSkipReset   = "CLIENTDB_SKIP_RESET"
)

// dotenvFiles are loaded when present; variables already set in the
// process environment are never overwritten.
var dotenvFiles = []string{".env"}

// parseEnv overlays settings from the environment. A missing .env file is
// not an error.
func parseEnv(config *Config) {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				panic(err)
			}
		}
	}

	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv(EnvSkipReset); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.SkipReset = b
	}
}
