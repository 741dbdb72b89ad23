package core

// Action represents a semantic simulation action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionToggleRun           // Space - start/pause the timed loop
	ActionStep                // N - advance exactly one generation while paused
	ActionRandomize           // R - random fill of the board
	ActionClear               // C - discard all live cells
	ActionToggleEraser        // E - pointer removes cells instead of adding
	ActionFaster              // + - shorten the generation interval
	ActionSlower              // - - lengthen the generation interval
	ActionBack                // B, Escape - go back to menu
	ActionQuit                // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleRun:
		return "ToggleRun"
	case ActionStep:
		return "Step"
	case ActionRandomize:
		return "Randomize"
	case ActionClear:
		return "Clear"
	case ActionToggleEraser:
		return "ToggleEraser"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerMode says what a pointer event does to the cell under it.
type PointerMode int

const (
	// PointerBrush follows the session's brush (paint, or erase in eraser mode).
	PointerBrush PointerMode = iota
	// PointerErase always removes the cell (right button).
	PointerErase
)

// PointerEvent is a press or drag at a pixel position on the board.
type PointerEvent struct {
	X, Y int
	Mode PointerMode
}

// InputFrame represents the input collected during one platform tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointers holds pointer events in arrival order.
	Pointers []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Point appends a pointer event to this frame.
func (f *InputFrame) Point(x, y int, mode PointerMode) {
	f.Pointers = append(f.Pointers, PointerEvent{X: x, Y: y, Mode: mode})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}
