package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/sim"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// helpHeight is the number of rows reserved under the board for the help bar.
const helpHeight = 1

// GameOptions configures a board session.
type GameOptions struct {
	Life    config.LifeConfig
	Runtime core.RuntimeConfig
	Pattern string // Start pattern, "" for a blank board
	Store   *storage.Store
	Logger  *log.Logger
}

// GameModel is the Bubble Tea model for an interactive board.
type GameModel struct {
	game       *sim.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	pointer    PointerTracker
	keyMapper  *KeyMapper
	help       help.Model
	tickID     uint64
	state      core.GameState
	standalone bool // Back quits the program instead of handing control to a session
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a board model.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	game := sim.New(opts.Life)
	if opts.Pattern != "" {
		game.SetPattern(opts.Pattern)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpHeight)),
		store:      opts.Store,
		logger:     opts.Logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		tickID:     newTickID(),
	}
}

// boardConfig is the runtime config handed to the simulation.
func (m GameModel) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-helpHeight)
	return cfg
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	// The game is a pointer, so the reset survives the value receiver.
	m.game.Reset(m.boardConfig())
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.Apply(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finish(sim.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.finish(sim.EndQuit)
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize rebuilds the board for the new terminal size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-helpHeight))
	m.help.Width = msg.Width

	// Cell coordinates do not survive a new board size.
	m.finish(sim.EndCleared)
	m.game.Reset(m.boardConfig())
	m.state = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.state = result.State
	if result.Finished != nil {
		m.saveRun(*result.Finished)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// finish records the current run, if any generation was computed.
func (m *GameModel) finish(reason string) {
	if summary := m.game.Finish(reason); summary != nil {
		m.saveRun(*summary)
	}
}

// saveRun persists a finished run. Failures are logged and play continues.
func (m *GameModel) saveRun(run core.RunSummary) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved",
		"pattern", run.Pattern,
		"generations", run.Generations,
		"reason", run.EndReason,
	)
}

// saveScreenshot saves the current board to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".life", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := m.game.Pattern()
	if name == "" {
		name = "board"
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the board and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last observed simulation state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Life returns the session's life config, including speed changes.
func (m GameModel) Life() config.LifeConfig {
	return m.game.Config()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameResult reports how a standalone board session ended.
type GameResult struct {
	Life       config.LifeConfig // Carries speed changes back to the caller
	BackToMenu bool
}

// Run starts a standalone Bubble Tea program for one board.
func Run(opts GameOptions) (GameResult, error) {
	model := NewGameModel(opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release events
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Life: opts.Life}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Life: opts.Life}, nil
	}
	return GameResult{Life: m.Life(), BackToMenu: m.BackToMenu()}, nil
}
