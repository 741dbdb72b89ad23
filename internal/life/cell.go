// Package life holds the Game of Life state and its generation rule.
//
// A Grid owns a sparse set of live cells inside fixed bounds. NextGeneration
// is the pure transition function; Grid.Advance applies it in place.
package life

import (
	"fmt"
	"sort"
)

// Cell is a cell coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is the size of a grid in cells.
type Bounds struct {
	W, H int
}

// Contains reports whether c lies inside [0,W)x[0,H).
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Area returns the number of cells in the bounds.
func (b Bounds) Area() int {
	return b.W * b.H
}

// CellSet is an unordered set of live cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells. Duplicates collapse.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells.
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the cells ordered by row, then column.
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
