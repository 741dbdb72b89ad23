// life is Conway's Game of Life for the terminal.
//
// Usage:
//
//	life play [pattern]      - Open a board, optionally seeded with a pattern
//	life menu                - Pick a pattern interactively
//	life serve               - Start SSH server for remote play
//	life runs                - Show recorded runs
//	life patterns            - List available patterns
//	life evolve <pattern>    - Evolve a pattern headlessly and print it
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible random fills
//	--db <path>             - Set database path (default: ~/.life/runs.db)
//	--config <path>         - Use a custom life.yaml
//	--speed <preset>        - slow, normal, fast or turbo
//	--patterns-dir <path>   - Load extra YAML patterns
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/patterns"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagSpeed       string
	flagPatternsDir string
	flagLogLevel    string
)

var (
	// Resolved in PersistentPreRunE
	lifeCfg config.LifeConfig
	logger  *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `Life is a terminal rendition of Conway's Game of Life.

Draw cells with the mouse, seed the board at random or from a named
pattern, then start the simulation and watch the generations evolve.

Available commands:
  play      - Open a board directly
  menu      - Interactive pattern picker
  serve     - Start SSH server for remote play
  runs      - View recorded runs
  patterns  - List available patterns
  evolve    - Print a pattern after N generations

Examples:
  life play
  life play glider --speed fast
  life menu
  life serve --ssh :2222
  life evolve r-pentomino -g 100`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom life.yaml")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, turbo")
	rootCmd.PersistentFlags().StringVar(&flagPatternsDir, "patterns-dir", "", "Directory of extra YAML patterns")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(evolveCmd)
}

// setup resolves logging, configuration and user patterns for every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
		Level:           level,
	})

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	lifeCfg, err = config.LoadLife(flagConfig)
	if err != nil {
		return err
	}

	if flagSpeed != "" {
		preset, ok := config.ParseSpeedPreset(flagSpeed)
		if !ok {
			return fmt.Errorf("invalid --speed %q: use slow, normal, fast or turbo", flagSpeed)
		}
		config.ApplySpeedPreset(&lifeCfg, preset)
	}

	if flagPatternsDir != "" {
		n, err := patterns.LoadDir(flagPatternsDir)
		if err != nil {
			logger.Warn("could not load patterns", "dir", flagPatternsDir, "error", err)
		} else {
			logger.Debug("loaded patterns", "dir", flagPatternsDir, "count", n)
		}
	}

	return nil
}

// tuiLogger returns a logger that writes to ~/.life/life.log so log lines do
// not tear the alternate screen. Falls back to discarding output.
func tuiLogger() (*log.Logger, func()) {
	l := log.NewWithOptions(io.Discard, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
		Level:           logger.GetLevel(),
	})

	home, err := os.UserHomeDir()
	if err != nil {
		return l, func() {}
	}
	dir := filepath.Join(home, ".life")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return l, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "life.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return l, func() {}
	}
	l.SetOutput(f)
	return l, func() { f.Close() }
}
