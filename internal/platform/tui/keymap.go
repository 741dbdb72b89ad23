package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// GameKeyMap defines the key bindings for a running board.
type GameKeyMap struct {
	Run        key.Binding
	Step       key.Binding
	Random     key.Binding
	Clear      key.Binding
	Eraser     key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Step, k.Random, k.Clear, k.Eraser, k.Faster, k.Slower, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Step, k.Random, k.Clear},
		{k.Eraser, k.Faster, k.Slower},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Run: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "."),
			key.WithHelp("n", "step"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "x"),
			key.WithHelp("c", "clear"),
		),
		Eraser: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "eraser"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Run):
		return core.ActionToggleRun, false
	case key.Matches(msg, km.keys.Step):
		return core.ActionStep, false
	case key.Matches(msg, km.keys.Random):
		return core.ActionRandomize, false
	case key.Matches(msg, km.keys.Clear):
		return core.ActionClear, false
	case key.Matches(msg, km.keys.Eraser):
		return core.ActionToggleEraser, false
	case key.Matches(msg, km.keys.Faster):
		return core.ActionFaster, false
	case key.Matches(msg, km.keys.Slower):
		return core.ActionSlower, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// PointerTracker turns mouse press, drag and release events into pointer
// events. Left button paints, right button erases; motion only counts while
// a button is held.
type PointerTracker struct {
	down bool
	mode core.PointerMode
}

// Apply records msg into frame. Returns true if a pointer event was added.
func (p *PointerTracker) Apply(msg tea.MouseMsg, frame *core.InputFrame) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			p.down, p.mode = true, core.PointerBrush
		case tea.MouseButtonRight:
			p.down, p.mode = true, core.PointerErase
		default:
			return false // Wheel and middle button
		}
		frame.Point(msg.X, msg.Y, p.mode)
		return true

	case tea.MouseActionMotion:
		if !p.down {
			return false
		}
		frame.Point(msg.X, msg.Y, p.mode)
		return true

	case tea.MouseActionRelease:
		p.down = false
	}
	return false
}

// Dragging reports whether a button is held.
func (p *PointerTracker) Dragging() bool {
	return p.down
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRuns
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRuns
	}

	return MenuActionNone
}
