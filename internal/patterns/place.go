package patterns

import (
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Place activates the pattern's cells offset by (ox, oy).
// Cells that fall outside the grid are dropped. Returns the number placed.
func Place(g *life.Grid, p registry.Pattern, ox, oy int) int {
	placed := 0
	b := g.Bounds()
	for _, c := range p.Cells {
		at := life.C(c.X+ox, c.Y+oy)
		if !b.Contains(at) {
			continue
		}
		g.Activate(at.X, at.Y)
		placed++
	}
	return placed
}

// PlaceCentered places the pattern in the middle of the grid.
func PlaceCentered(g *life.Grid, p registry.Pattern) int {
	w, h := p.Size()
	b := g.Bounds()
	return Place(g, p, (b.W-w)/2, (b.H-h)/2)
}
