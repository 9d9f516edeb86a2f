package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		start       *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"-d", "postgres://flag/clients_db", "-l", "debug", "-k"},
			start:    &Config{},
			expected: &Config{DatabaseDSN: "postgres://flag/clients_db", LogLevel: "debug", SkipReset: true},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"find", "--first-name", "Natalia", "-c", "x.json", "-l", "warn"},
			start:    &Config{DatabaseDSN: "keep"},
			expected: &Config{DatabaseDSN: "keep", LogLevel: "warn"},
		},
		{
			name:     "no flags keeps values",
			args:     nil,
			start:    &Config{DatabaseDSN: "keep", LogLevel: "info"},
			expected: &Config{DatabaseDSN: "keep", LogLevel: "info"},
		},
		{
			name:        "bad bool value panics",
			args:        []string{"-k=maybe"},
			start:       &Config{},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(tt.start, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(tt.start, tt.args) })
			assert.Empty(t, cmp.Diff(tt.start, tt.expected))
		})
	}
}
