package life

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Grid is a bounded board of live cells stored sparsely.
//
// Coordinates outside the bounds are ignored by Activate, Deactivate and
// IsLive; use the Checked variants to have them reported as ErrOutOfBounds.
// A Grid is not safe for concurrent use.
type Grid struct {
	bounds   Bounds
	cellSize int
	live     CellSet
}

// New creates an empty grid. cellSize is the number of pixels per cell edge.
func New(b Bounds, cellSize int) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("life: cell size %d: %w", cellSize, ErrInvalidArgument)
	}
	if b.W < 0 || b.H < 0 {
		return nil, fmt.Errorf("life: bounds %dx%d: %w", b.W, b.H, ErrInvalidArgument)
	}
	return &Grid{
		bounds:   b,
		cellSize: cellSize,
		live:     make(CellSet),
	}, nil
}

// FromCanvas creates an empty grid covering a canvas of the given pixel size.
// Partial cells at the right and bottom edges are not part of the grid.
func FromCanvas(canvasW, canvasH, cellSize int) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("life: cell size %d: %w", cellSize, ErrInvalidArgument)
	}
	return New(Bounds{W: canvasW / cellSize, H: canvasH / cellSize}, cellSize)
}

// Bounds returns the grid size in cells.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// CellSize returns the pixel size of one cell edge.
func (g *Grid) CellSize() int {
	return g.cellSize
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	return len(g.live)
}

// Activate makes (x, y) live. Activating a live cell changes nothing.
func (g *Grid) Activate(x, y int) {
	c := Cell{X: x, Y: y}
	if g.bounds.Contains(c) {
		g.live[c] = struct{}{}
	}
}

// Deactivate makes (x, y) dead. Deactivating a dead cell changes nothing.
func (g *Grid) Deactivate(x, y int) {
	delete(g.live, Cell{X: x, Y: y})
}

// IsLive reports whether (x, y) is live.
func (g *Grid) IsLive(x, y int) bool {
	return g.live.Has(Cell{X: x, Y: y})
}

// ActivateChecked is Activate that reports coordinates outside the grid.
func (g *Grid) ActivateChecked(x, y int) error {
	if !g.bounds.Contains(Cell{X: x, Y: y}) {
		return fmt.Errorf("life: activate (%d,%d) on %dx%d grid: %w", x, y, g.bounds.W, g.bounds.H, ErrOutOfBounds)
	}
	g.Activate(x, y)
	return nil
}

// DeactivateChecked is Deactivate that reports coordinates outside the grid.
func (g *Grid) DeactivateChecked(x, y int) error {
	if !g.bounds.Contains(Cell{X: x, Y: y}) {
		return fmt.Errorf("life: deactivate (%d,%d) on %dx%d grid: %w", x, y, g.bounds.W, g.bounds.H, ErrOutOfBounds)
	}
	g.Deactivate(x, y)
	return nil
}

// CellAt maps a pixel position to the cell containing it.
func (g *Grid) CellAt(px, py int) Cell {
	return Cell{X: core.FloorDiv(px, g.cellSize), Y: core.FloorDiv(py, g.cellSize)}
}

// PixelRect returns the pixel area covered by c.
func (g *Grid) PixelRect(c Cell) core.Rect {
	return core.NewRect(c.X*g.cellSize, c.Y*g.cellSize, g.cellSize, g.cellSize)
}

// ActivatePixel activates the cell under pixel (px, py) and returns the
// area to repaint.
func (g *Grid) ActivatePixel(px, py int) core.Rect {
	c := g.CellAt(px, py)
	g.Activate(c.X, c.Y)
	return g.PixelRect(c)
}

// DeactivatePixel deactivates the cell under pixel (px, py) and returns the
// area to repaint.
func (g *Grid) DeactivatePixel(px, py int) core.Rect {
	c := g.CellAt(px, py)
	g.Deactivate(c.X, c.Y)
	return g.PixelRect(c)
}

// Advance replaces the live cells with the next generation and returns them,
// ordered by row then column.
func (g *Grid) Advance() []Cell {
	g.live = NextGeneration(g.live, g.bounds)
	return g.live.Sorted()
}

// Live returns a copy of the live-cell set.
func (g *Grid) Live() CellSet {
	return g.live.Clone()
}

// Cells returns the live cells ordered by row then column.
func (g *Grid) Cells() []Cell {
	return g.live.Sorted()
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.live = make(CellSet)
}

// Fill runs one Bernoulli trial per grid cell and activates the cell when it
// succeeds. Cells already live stay live.
func (g *Grid) Fill(rng *rand.Rand, probability float64) error {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return fmt.Errorf("life: fill probability %v: %w", probability, ErrInvalidArgument)
	}
	for y := 0; y < g.bounds.H; y++ {
		for x := 0; x < g.bounds.W; x++ {
			if rng.Float64() < probability {
				g.Activate(x, y)
			}
		}
	}
	return nil
}
