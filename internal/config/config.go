// Package config provides YAML-based configuration loading for the
// breakout runtime: frame timing, input handling, rendering and logging.
// Gameplay constants live in the engine and are not configurable.
package config

import (
	"fmt"
	"time"
)

// Config contains all runtime configuration.
type Config struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Input   InputConfig   `yaml:"input"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

// RuntimeConfig defines frame timing and seeding.
type RuntimeConfig struct {
	TickRate      int           `yaml:"tick_rate"`       // Frames per second
	Seed          int64         `yaml:"seed"`            // 0 = seed from the clock
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // Upper bound on a single tick's elapsed time
}

// InputConfig defines how key presses become held directions.
type InputConfig struct {
	// HoldTimeout is how long a direction stays held after its last key event.
	// Terminals send repeats rather than key-up events.
	HoldTimeout time.Duration `yaml:"hold_timeout"`
}

// RenderConfig defines display options.
type RenderConfig struct {
	Color         bool `yaml:"color"`
	ShowFrameTime bool `yaml:"show_frame_time"`
	ShowHelp      bool `yaml:"show_help"`
}

// LogConfig defines the log level and destination.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = discard in the TUI, stderr in sim
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// FrameInterval returns the target time between ticks.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Runtime.TickRate)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Runtime.TickRate <= 0 {
		return fmt.Errorf("runtime.tick_rate must be positive, got %d", c.Runtime.TickRate)
	}
	if c.Runtime.TickRate > 240 {
		return fmt.Errorf("runtime.tick_rate must be at most 240, got %d", c.Runtime.TickRate)
	}
	if c.Runtime.MaxFrameDelta <= 0 {
		return fmt.Errorf("runtime.max_frame_delta must be positive, got %s", c.Runtime.MaxFrameDelta)
	}
	if c.Input.HoldTimeout < 0 {
		return fmt.Errorf("input.hold_timeout must not be negative, got %s", c.Input.HoldTimeout)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
