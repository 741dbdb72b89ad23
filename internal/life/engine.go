package life

// NextGeneration computes the generation that follows live inside bounds b.
//
// Every cell of the grid is visited, dead ones included, since a dead cell with
// exactly three live neighbors is born. Neighbors outside b do not count; the
// grid does not wrap. live is never modified.
func NextGeneration(live CellSet, b Bounds) CellSet {
	next := make(CellSet, len(live))
	for x := 0; x < b.W; x++ {
		for y := 0; y < b.H; y++ {
			c := Cell{X: x, Y: y}
			n := Neighbors(live, b, x, y)
			if live.Has(c) {
				if n == 2 || n == 3 {
					next[c] = struct{}{}
				}
			} else if n == 3 {
				next[c] = struct{}{}
			}
		}
	}
	return next
}

// Neighbors counts the live cells among the eight cells adjacent to (x, y)
// that fall inside b.
func Neighbors(live CellSet, b Bounds, x, y int) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Cell{X: x + dx, Y: y + dy}
			if !b.Contains(n) {
				continue
			}
			if live.Has(n) {
				count++
			}
		}
	}
	return count
}
