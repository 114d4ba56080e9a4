package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("runtime:\n  tick_rate: 30\n  seed: 42\ninput:\n  hold_timeout: 80ms\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Runtime.TickRate)
	assert.Equal(t, int64(42), cfg.Runtime.Seed)
	assert.Equal(t, 80*time.Millisecond, cfg.Input.HoldTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset keys keep their defaults.
	assert.Equal(t, 100*time.Millisecond, cfg.Runtime.MaxFrameDelta)
	assert.True(t, cfg.Render.Color)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runtime:\n  tick_rate: 0\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_rate")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"negative tick rate", func(c *Config) { c.Runtime.TickRate = -1 }, "tick_rate"},
		{"tick rate too high", func(c *Config) { c.Runtime.TickRate = 1000 }, "tick_rate"},
		{"zero frame delta", func(c *Config) { c.Runtime.MaxFrameDelta = 0 }, "max_frame_delta"},
		{"negative hold", func(c *Config) { c.Input.HoldTimeout = -time.Millisecond }, "hold_timeout"},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errSub)
		})
	}
}
