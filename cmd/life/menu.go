package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a starting pattern from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open a board.
Press Esc or B on a board to come back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open board
  Tab          - Recorded runs
  Q            - Quit

Examples:
  life menu
  life menu --speed slow
  life menu --patterns-dir ./patterns`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	tuiLog, closeLog := tuiLogger()
	defer closeLog()

	cfg := runtimeConfig()
	life := lifeCfg

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("error running menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsRuns {
			goBack, err := tui.RunRunsBoard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("error running runs board: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		// Fresh seed for each board unless one was pinned
		rc := cfg
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(tui.GameOptions{
			Life:    life,
			Runtime: rc,
			Pattern: menuResult.Pattern,
			Store:   store,
			Logger:  tuiLog,
		})
		if err != nil {
			return fmt.Errorf("error running board: %w", err)
		}
		life = result.Life

		if !result.BackToMenu {
			return nil
		}
	}
}
