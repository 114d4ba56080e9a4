package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a full-screen game.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space      - Launch the ball
  Q/Ctrl+C   - Quit

Examples:
  breakout play
  breakout play --seed 42
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loggerSetter is implemented by games that report their state transitions.
type loggerSetter interface {
	SetLogger(*log.Logger)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd()) //#nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return errors.New("play needs a terminal; use 'breakout sim' for headless runs")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file.
	logger, closer, err := logging.New(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickRate = cfg.Runtime.TickRate
	rc.Seed = cfg.Runtime.Seed

	game, err := registry.Create(breakout.ID, rc)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}
	if ls, ok := game.(loggerSetter); ok {
		ls.SetLogger(logger)
	}

	logger.Info("starting", "game", game.Title(), "seed", rc.Seed, "fps", rc.TickRate, "width", rc.ScreenW, "height", rc.ScreenH)

	if err := tui.Run(game, cfg, rc, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
