package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Runtime: RuntimeConfig{
			TickRate:      60,
			Seed:          0,
			MaxFrameDelta: 100 * time.Millisecond,
		},
		Input: InputConfig{
			HoldTimeout: 150 * time.Millisecond,
		},
		Render: RenderConfig{
			Color:         true,
			ShowFrameTime: true,
			ShowHelp:      true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
