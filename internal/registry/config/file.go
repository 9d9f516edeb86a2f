package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/clientdb/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config file. Pointer fields let a
// file override only the settings it names.
type FileConfig struct {
	DatabaseDSN *string `json:"database_dsn" yaml:"database_dsn"`
	LogLevel    *string `json:"log_level" yaml:"log_level"`
	SkipReset   *bool   `json:"skip_reset" yaml:"skip_reset"`
}

// parseFile loads the file named by -c/-config, if any. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON. An unreadable
// or malformed file panics.
func parseFile(config *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.DatabaseDSN != nil {
		config.DatabaseDSN = *fc.DatabaseDSN
	}
	if fc.LogLevel != nil {
		config.LogLevel = *fc.LogLevel
	}
	if fc.SkipReset != nil {
		config.SkipReset = *fc.SkipReset
	}
}
