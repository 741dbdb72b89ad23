package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List available patterns",
	Long: `Shows the built-in patterns and any loaded with --patterns-dir.

Pattern files are YAML with a name, an optional title and description,
and either rows drawn with O and . or a list of [x, y] cells.`,
	Args: cobra.NoArgs,
	Run:  runPatterns,
}

func runPatterns(_ *cobra.Command, _ []string) {
	list := registry.List()

	if len(list) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, p := range list {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %5s  %s\n", maxNameLen, "Name", "Cells", "Title")
	fmt.Printf("  %-*s  %5s  %s\n", maxNameLen, "----", "-----", "-----")

	for _, p := range list {
		fmt.Printf("  %-*s  %5d  %s\n", maxNameLen, p.Name, p.Population, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'life play <name>' to start from a pattern.")
}
