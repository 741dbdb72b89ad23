package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var (
	flagGenerations int
	flagEvolveW     int
	flagEvolveH     int
	flagEvery       int
)

var evolveCmd = &cobra.Command{
	Use:   "evolve <pattern>",
	Short: "Evolve a pattern without the TUI and print it",
	Long: `Place a pattern in the center of a bounded board, advance it, and print
the board with O for live and . for dead cells.

Cells beyond the board edge count as dead, so patterns that reach the
edge behave as on a finite board.

Examples:
  life evolve glider -g 4
  life evolve r-pentomino -g 200 --width 80 --height 40
  life evolve blinker -g 4 --every 1`,
	Args: cobra.ExactArgs(1),
	RunE: runEvolve,
}

func init() {
	evolveCmd.Flags().IntVarP(&flagGenerations, "generations", "g", 10, "Number of generations to advance")
	evolveCmd.Flags().IntVar(&flagEvolveW, "width", 0, "Board width in cells (0 = pattern width + margin)")
	evolveCmd.Flags().IntVar(&flagEvolveH, "height", 0, "Board height in cells (0 = pattern height + margin)")
	evolveCmd.Flags().IntVar(&flagEvery, "every", 0, "Also print every Nth generation (0 = final only)")
}

func runEvolve(_ *cobra.Command, args []string) error {
	p, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w, run 'life patterns' to see available patterns", err)
	}
	if flagGenerations < 0 {
		return fmt.Errorf("invalid --generations %d: must not be negative", flagGenerations)
	}

	w, h := p.Size()
	bounds := life.Bounds{W: flagEvolveW, H: flagEvolveH}
	if bounds.W == 0 {
		bounds.W = w + 10
	}
	if bounds.H == 0 {
		bounds.H = h + 10
	}

	g, err := life.New(bounds, 1)
	if err != nil {
		return err
	}
	placed := patterns.PlaceCentered(g, p)
	if placed < len(p.Cells) {
		logger.Warn("pattern clipped by board", "placed", placed, "cells", len(p.Cells))
	}

	if flagEvery > 0 {
		printFrame(g, 0)
	}
	for gen := 1; gen <= flagGenerations; gen++ {
		g.Advance()
		if flagEvery > 0 && gen%flagEvery == 0 && gen != flagGenerations {
			printFrame(g, gen)
		}
	}
	printFrame(g, flagGenerations)
	return nil
}

func printFrame(g *life.Grid, gen int) {
	fmt.Printf("generation %d  population %d\n", gen, g.Population())
	fmt.Println(strings.Join(patterns.Rows(g), "\n"))
	fmt.Println()
}
