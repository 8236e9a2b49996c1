package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/game"
	"github.com/vovakirdan/tui-rogue/internal/platform/tui"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a game in this terminal.

Controls:
  Numpad/vi keys/arrows  - Move (8 directions)
  5/./0                  - Wait a turn
  F1                     - Spawn a soldier near you
  Tab                    - Show/hide messages
  F2                     - Shrink the view to 40x30
  Ctrl+S                 - Save a screenshot
  ?                      - Toggle help
  Q/Ctrl+C               - Quit and record the run

Logs go to ~/.rogue/rogue.log.

Examples:
  rogue play
  rogue play --seed 42
  rogue play --config ./my-rogue.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "rogue")
	if err != nil {
		return err
	}

	// Get terminal size
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	ctrl, err := game.FromConfig(cfg, rc.Seed, logger)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	// Open run journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(ctrl, tui.Options{
		Shown:  cfg.Messages.Shown,
		Store:  store,
		Logger: logger,
		Width:  rc.ScreenW,
		Height: rc.ScreenH,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}

	fmt.Printf("Seed %d: %d turns, %d maps visited.\n", rc.Seed, ctrl.Turns(), ctrl.MapsVisited())
	return nil
}
