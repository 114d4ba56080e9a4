package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// isolate keeps the CLI away from config files in the user's home and
// working directory by pointing --config at a copy of the defaults.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	require.NoError(t, os.WriteFile(path, config.DefaultYAML(), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSimReproducible(t *testing.T) {
	cfgPath := isolate(t)
	args := []string{"sim", "--config", cfgPath, "--seed", "42", "--ticks", "600", "--log-level", "error"}

	first := runCLI(t, args...)
	second := runCLI(t, args...)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "seed:      42")
	assert.Contains(t, first, "ticks:     600")
	assert.Contains(t, first, "hash:")
}

func TestConfigPrintsDefaults(t *testing.T) {
	isolate(t)
	out := runCLI(t, "config")

	assert.Contains(t, out, "tick_rate: 60")
	assert.Contains(t, out, "hold_timeout")
}
