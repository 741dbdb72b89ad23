package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [pattern]",
	Short: "Open a board",
	Long: `Open a board, optionally seeded with a named pattern in its center.

Controls:
  Left mouse      - Draw cells (drag to paint)
  Right mouse     - Erase cells
  Space           - Start/pause simulation
  N               - Advance one generation
  R               - Random fill
  C               - Clear the board
  E               - Toggle eraser
  +/-             - Faster/slower
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Examples:
  life play
  life play gosper-gun
  life play acorn --speed turbo
  life play --config ./my-life.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	pattern := lifeCfg.Simulation.Pattern
	if len(args) == 1 {
		pattern = args[0]
	}
	if pattern != "" && !registry.Exists(pattern) {
		return fmt.Errorf("unknown pattern %q, run 'life patterns' to see available patterns", pattern)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	tuiLog, closeLog := tuiLogger()
	defer closeLog()

	_, err := tui.Run(tui.GameOptions{
		Life:    lifeCfg,
		Runtime: runtimeConfig(),
		Pattern: pattern,
		Store:   store,
		Logger:  tuiLog,
	})
	if err != nil {
		return fmt.Errorf("error running board: %w", err)
	}
	return nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the runs database. Boards still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
