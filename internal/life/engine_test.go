package life

import "testing"

func TestNextGenerationEmptyIsFixedPoint(t *testing.T) {
	for _, b := range []Bounds{{0, 0}, {1, 1}, {5, 3}, {40, 20}} {
		next := NextGeneration(NewCellSet(), b)
		if len(next) != 0 {
			t.Errorf("bounds %v: empty board produced %d cells", b, len(next))
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	b := Bounds{W: 5, H: 5}
	next := NextGeneration(NewCellSet(C(2, 2)), b)
	if len(next) != 0 {
		t.Errorf("isolated cell should die, got %v", next.Sorted())
	}
}

func TestBlockIsStillLife(t *testing.T) {
	b := Bounds{W: 6, H: 6}
	block := NewCellSet(C(2, 2), C(3, 2), C(2, 3), C(3, 3))

	cur := block
	for gen := 1; gen <= 10; gen++ {
		cur = NextGeneration(cur, b)
		if !cur.Equal(block) {
			t.Fatalf("generation %d: block changed to %v", gen, cur.Sorted())
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	b := Bounds{W: 5, H: 5}
	vertical := NewCellSet(C(1, 0), C(1, 1), C(1, 2))
	horizontal := NewCellSet(C(0, 1), C(1, 1), C(2, 1))

	gen1 := NextGeneration(vertical, b)
	if !gen1.Equal(horizontal) {
		t.Fatalf("generation 1 = %v, expected %v", gen1.Sorted(), horizontal.Sorted())
	}

	gen2 := NextGeneration(gen1, b)
	if !gen2.Equal(vertical) {
		t.Fatalf("generation 2 = %v, expected %v", gen2.Sorted(), vertical.Sorted())
	}
}

func TestNextGenerationDoesNotMutateInput(t *testing.T) {
	b := Bounds{W: 5, H: 5}
	live := NewCellSet(C(1, 0), C(1, 1), C(1, 2))
	before := live.Clone()

	next := NextGeneration(live, b)
	if !live.Equal(before) {
		t.Errorf("input set was modified: %v", live.Sorted())
	}
	next[C(4, 4)] = struct{}{}
	if live.Has(C(4, 4)) {
		t.Error("result shares storage with the input")
	}
}

func TestCornerBoundary(t *testing.T) {
	b := Bounds{W: 5, H: 5}

	tests := []struct {
		name  string
		live  CellSet
		alive bool
	}{
		{
			name:  "live corner with three neighbors survives",
			live:  NewCellSet(C(0, 0), C(1, 0), C(0, 1), C(1, 1)),
			alive: true,
		},
		{
			name:  "dead corner with three neighbors is born",
			live:  NewCellSet(C(1, 0), C(0, 1), C(1, 1)),
			alive: true,
		},
		{
			name:  "dead corner with two neighbors stays dead",
			live:  NewCellSet(C(1, 0), C(0, 1)),
			alive: false,
		},
		{
			name:  "live corner with one neighbor dies",
			live:  NewCellSet(C(0, 0), C(1, 1)),
			alive: false,
		},
		{
			// Cells on the opposite edges would be neighbors on a torus.
			name:  "opposite edges do not wrap",
			live:  NewCellSet(C(4, 0), C(0, 4), C(4, 4)),
			alive: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := NextGeneration(tc.live, b)
			if next.Has(C(0, 0)) != tc.alive {
				t.Errorf("corner alive = %v, expected %v (next=%v)", !tc.alive, tc.alive, next.Sorted())
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	b := Bounds{W: 3, H: 3}
	full := NewCellSet()
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			full[C(x, y)] = struct{}{}
		}
	}

	tests := []struct {
		x, y, expected int
	}{
		{1, 1, 8}, // center
		{0, 0, 3}, // corner
		{1, 0, 5}, // edge
		{2, 2, 3}, // opposite corner
	}

	for _, tc := range tests {
		if n := Neighbors(full, b, tc.x, tc.y); n != tc.expected {
			t.Errorf("Neighbors(%d, %d) = %d, expected %d", tc.x, tc.y, n, tc.expected)
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	b := Bounds{W: 10, H: 10}
	glider := NewCellSet(C(1, 0), C(2, 1), C(0, 2), C(1, 2), C(2, 2))

	cur := glider
	for i := 0; i < 4; i++ {
		cur = NextGeneration(cur, b)
	}

	shifted := NewCellSet()
	for c := range glider {
		shifted[C(c.X+1, c.Y+1)] = struct{}{}
	}
	if !cur.Equal(shifted) {
		t.Errorf("glider after 4 generations = %v, expected %v", cur.Sorted(), shifted.Sorted())
	}
}
