package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads from json", func(t *testing.T) {
		path := writeTempJSON(t, dir, "clientdb.json", map[string]any{
			"database_dsn": "postgres://json/clients_db",
			"log_level":    "warn",
			"skip_reset":   true,
		})

		cfg := &Config{}
		parseFile(cfg, []string{"-config", path})

		assert.Equal(t, "postgres://json/clients_db", cfg.DatabaseDSN)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.True(t, cfg.SkipReset)
	})

	t.Run("loads from yaml", func(t *testing.T) {
		path := filepath.Join(dir, "clientdb.yml")
		require.NoError(t, os.WriteFile(path, []byte("database_dsn: postgres://yaml/clients_db\n"), 0o600))

		cfg := &Config{LogLevel: "info"}
		parseFile(cfg, []string{"-c", path})

		assert.Equal(t, "postgres://yaml/clients_db", cfg.DatabaseDSN)
		assert.Equal(t, "info", cfg.LogLevel, "fields absent from the file are kept")
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{DatabaseDSN: "defaults", LogLevel: "debug"}
		parseFile(cfg, []string{"-d", "other"})

		assert.Equal(t, "defaults", cfg.DatabaseDSN)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
