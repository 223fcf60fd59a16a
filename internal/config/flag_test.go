package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		expected    Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-f", "/tmp/other.db", "-d", "250", "-r", "0.1"},
			expected: Config{
				StoragePath:       "/tmp/other.db",
				SimulatedDelay:    250 * time.Millisecond,
				SimulatedFailRate: 0.1,
			},
		},
		{
			name:        "non-numeric delay panics",
			args:        []string{"cmd", "-d", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}
