package patterns

import (
	"strings"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Rows draws the grid in the same O and . notation pattern files use.
func Rows(g *life.Grid) []string {
	b := g.Bounds()
	rows := make([]string, b.H)
	var sb strings.Builder
	for y := 0; y < b.H; y++ {
		sb.Reset()
		for x := 0; x < b.W; x++ {
			if g.IsLive(x, y) {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
