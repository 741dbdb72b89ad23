package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single pixel overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.a.Intersects(tc.b); result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			if result := tc.b.Intersects(tc.a); result != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{0, 5, 0},
		{4, 5, 0},
		{5, 5, 1},
		{12, 5, 2},
		{-1, 5, -1},
		{-5, 5, -1},
		{-6, 5, -2},
	}

	for _, tc := range tests {
		if result := FloorDiv(tc.a, tc.b); result != tc.expected {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, result, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionToggleRun)
	f.Point(3, 4, PointerErase)

	if !f.Has(ActionToggleRun) {
		t.Error("Set action should be reported by Has")
	}
	if len(f.Pointers) != 1 || f.Pointers[0] != (PointerEvent{X: 3, Y: 4, Mode: PointerErase}) {
		t.Errorf("Pointers = %+v", f.Pointers)
	}

	f.Clear()
	if f.Has(ActionToggleRun) || len(f.Pointers) != 0 {
		t.Error("Clear should drop actions and pointer events")
	}

	var zero InputFrame
	if zero.Has(ActionStep) {
		t.Error("Zero frame should have no actions")
	}
	if ActionStep.String() != "Step" || Action(99).String() != "Unknown" {
		t.Error("Action.String mismatch")
	}
}
