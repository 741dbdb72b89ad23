// Package sim drives an interactive life session: it turns per-tick input
// into grid edits, runs the timed generation loop and draws the board and HUD.
// It has no Bubble Tea dependency so the same session runs locally, over SSH
// and in tests.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// End reasons recorded in a core.RunSummary.
const (
	EndExtinct = "extinct"
	EndCleared = "cleared"
	EndQuit    = "quit"
)

// ExtinctionNotice is shown when an advance leaves the board empty.
const ExtinctionNotice = "All cells died"

// Labels mirror the buttons of a pointer-driven UI: they name what pressing
// the key will do next.
const (
	LabelStart      = "Start simulation"
	LabelPause      = "Pause simulation"
	LabelActivate   = "Activate cells"
	LabelDeactivate = "Deactivate cells"
)

const (
	hudHeight     = 2 // Separator plus status line
	liveRune      = '█'
	deadRune      = '·'
	defaultTicks  = 60
	minScreenRows = hudHeight + 1
)

// Game is one interactive life session.
type Game struct {
	cfg     config.LifeConfig
	palette config.Palette
	pattern string // Start pattern stamped on Reset, "" for a blank board

	rng      *rand.Rand
	grid     *life.Grid
	tick     uint64
	tickRate int
	screenW  int
	screenH  int
	tooSmall bool

	running       bool
	eraser        bool
	genEveryTicks int
	genTicker     int

	// Current run
	generation int
	initial    int
	peak       int

	toast      string
	toastTicks int
}

// New creates a session using cfg. Call Reset before stepping.
func New(cfg config.LifeConfig) *Game {
	return &Game{
		cfg:     cfg,
		palette: cfg.Palette(),
		pattern: cfg.Simulation.Pattern,
	}
}

// SetPattern selects the start pattern used by the next Reset.
// Unknown names fall back to a blank board.
func (g *Game) SetPattern(name string) {
	g.pattern = name
}

// Pattern returns the selected start pattern name.
func (g *Game) Pattern() string {
	return g.pattern
}

// Config returns the session configuration, including speed changes.
func (g *Game) Config() config.LifeConfig {
	return g.cfg
}

// Reset builds a fresh, paused board sized to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTicks
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.running = false
	g.eraser = false
	g.toast = ""
	g.toastTicks = 0
	g.genTicker = 0
	g.updateSpeed()

	boardH := max(0, g.screenH-hudHeight)
	grid, err := life.FromCanvas(max(0, g.screenW), boardH, g.cfg.Board.CellSize)
	if err != nil {
		// Cell size was rejected, fall back to one character per cell.
		grid, _ = life.FromCanvas(max(0, g.screenW), boardH, 1)
	}
	g.grid = grid
	b := grid.Bounds()
	g.tooSmall = g.screenH < minScreenRows || b.W == 0 || b.H == 0

	if g.pattern != "" {
		if p, err := registry.Get(g.pattern); err == nil {
			patterns.PlaceCentered(g.grid, p)
		}
	}
	g.startRun()
}

// Grid exposes the board for the headless renderer and tests.
func (g *Game) Grid() *life.Grid {
	return g.grid
}

// Step advances the session by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.toastTicks > 0 {
		g.toastTicks--
		if g.toastTicks == 0 {
			g.toast = ""
		}
	}

	if g.tooSmall || g.grid == nil {
		return core.StepResult{State: g.State()}
	}

	var finished *core.RunSummary

	switch {
	case in.Has(core.ActionClear):
		finished = g.clear()
	case in.Has(core.ActionRandomize):
		// A random fill replaces the board but keeps the loop state.
		wasRunning := g.running
		finished = g.clear()
		if err := g.grid.Fill(g.rng, g.cfg.Seeding.Probability); err != nil {
			g.showToast(err.Error())
		}
		g.startRun()
		g.running = wasRunning
		g.genTicker = 0
	}

	if in.Has(core.ActionToggleEraser) {
		g.eraser = !g.eraser
	}
	if in.Has(core.ActionFaster) {
		g.cfg.Simulation.IntervalMS = config.Faster(g.cfg.Simulation.IntervalMS)
		g.updateSpeed()
	}
	if in.Has(core.ActionSlower) {
		g.cfg.Simulation.IntervalMS = config.Slower(g.cfg.Simulation.IntervalMS)
		g.updateSpeed()
	}
	if in.Has(core.ActionToggleRun) {
		g.running = !g.running
		g.genTicker = 0
	}

	for _, p := range in.Pointers {
		g.applyPointer(p)
	}
	if g.generation == 0 {
		g.startRun()
	} else {
		g.peak = max(g.peak, g.grid.Population())
	}

	advanced := false
	switch {
	case g.running:
		g.genTicker++
		if g.genTicker >= g.genEveryTicks {
			g.genTicker = 0
			advanced = true
			if r := g.advance(); r != nil {
				finished = r
			}
		}
	case in.Has(core.ActionStep):
		advanced = true
		if r := g.advance(); r != nil {
			finished = r
		}
	}

	return core.StepResult{State: g.State(), Advanced: advanced, Finished: finished}
}

// applyPointer paints or erases the cell under a pointer event.
// Events outside the board area, such as clicks on the HUD, are ignored.
func (g *Game) applyPointer(p core.PointerEvent) {
	if !g.boardRect().Contains(p.X, p.Y) {
		return
	}
	if p.Mode == core.PointerErase || g.eraser {
		g.grid.DeactivatePixel(p.X, p.Y)
		return
	}
	g.grid.ActivatePixel(p.X, p.Y)
}

// advance computes one generation and applies the extinction policy.
func (g *Game) advance() *core.RunSummary {
	before := g.grid.Population()
	if before == 0 {
		// An empty board is a fixed point and never starts a run.
		if g.cfg.Simulation.StopOnExtinction {
			g.running = false
			g.showToast(ExtinctionNotice)
		}
		return nil
	}
	if g.generation == 0 {
		g.initial = before
	}
	cells := g.grid.Advance()
	g.generation++
	g.peak = max(g.peak, len(cells))

	if len(cells) > 0 {
		return nil
	}

	summary := g.summary(EndExtinct)
	g.showToast(ExtinctionNotice)
	if g.cfg.Simulation.StopOnExtinction {
		g.running = false
		g.grid.Clear()
	}
	g.startRun()
	return summary
}

// clear discards the board. A run that advanced at least once is reported.
func (g *Game) clear() *core.RunSummary {
	var summary *core.RunSummary
	if g.generation > 0 {
		summary = g.summary(EndCleared)
	}
	g.grid.Clear()
	g.running = false
	g.startRun()
	return summary
}

// Finish ends the current run, e.g. when the player quits.
// Returns nil if no generation has been computed since the last run ended.
func (g *Game) Finish(reason string) *core.RunSummary {
	if g.grid == nil || g.generation == 0 {
		return nil
	}
	summary := g.summary(reason)
	g.running = false
	g.startRun()
	return summary
}

// boardRect is the board area in screen units.
func (g *Game) boardRect() core.Rect {
	b := g.grid.Bounds()
	cs := g.grid.CellSize()
	return core.NewRect(0, 0, b.W*cs, b.H*cs)
}

func (g *Game) startRun() {
	g.generation = 0
	g.initial = 0
	g.peak = 0
	if g.grid != nil {
		g.initial = g.grid.Population()
		g.peak = g.initial
	}
}

func (g *Game) summary(reason string) *core.RunSummary {
	b := g.grid.Bounds()
	return &core.RunSummary{
		Pattern:           g.pattern,
		Width:             b.W,
		Height:            b.H,
		Generations:       g.generation,
		PeakPopulation:    g.peak,
		InitialPopulation: g.initial,
		EndReason:         reason,
	}
}

func (g *Game) showToast(msg string) {
	g.toast = msg
	g.toastTicks = max(1, g.cfg.Simulation.ToastMS*g.tickRate/1000)
}

// updateSpeed converts the configured interval into platform ticks.
func (g *Game) updateSpeed() {
	rate := g.tickRate
	if rate <= 0 {
		rate = defaultTicks
	}
	g.genEveryTicks = max(1, g.cfg.Simulation.IntervalMS*rate/1000)
}

// State returns the externally visible session state.
func (g *Game) State() core.GameState {
	pop := 0
	if g.grid != nil {
		pop = g.grid.Population()
	}
	return core.GameState{
		Generation: g.generation,
		Population: pop,
		Running:    g.running,
		Eraser:     g.eraser,
	}
}

// Render draws the board and the bottom HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.grid == nil {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", g.palette.HUD)
		return
	}

	view := core.NewRect(0, 0, dst.Width(), max(0, dst.Height()-hudHeight))
	b := g.grid.Bounds()
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			r := g.grid.PixelRect(life.C(x, y))
			if !r.Intersects(view) {
				continue
			}
			if g.grid.IsLive(x, y) {
				dst.DrawRect(r, liveRune, g.palette.Live)
			} else {
				dst.DrawRect(r, deadRune, g.palette.Dead)
			}
		}
	}

	if g.toast != "" {
		msg := " " + g.toast + " "
		_, cy := g.boardRect().Center()
		dst.DrawTextCentered(core.Clamp(cy, 0, max(0, view.H-1)), msg, g.palette.Eraser)
	}

	g.renderHUD(dst)
}

// renderHUD draws the separator and status line at the bottom of the screen.
func (g *Game) renderHUD(dst *core.Screen) {
	sepY := dst.Height() - hudHeight
	dst.DrawHLine(0, sepY, dst.Width(), '─', g.palette.HUD)

	runLabel := LabelStart
	if g.running {
		runLabel = LabelPause
	}
	eraserLabel := LabelDeactivate
	eraserColor := g.palette.HUD
	if g.eraser {
		eraserLabel = LabelActivate
		eraserColor = g.palette.Eraser
	}

	speed := string(config.PresetForInterval(g.cfg.Simulation.IntervalMS))
	if speed == "" {
		speed = "custom"
	}

	y := sepY + 1
	status := fmt.Sprintf(" Gen %d  Pop %d  Peak %d  %s %dms ",
		g.generation, g.grid.Population(), g.peak, speed, g.cfg.Simulation.IntervalMS)
	dst.DrawTextColor(0, y, status, g.palette.HUD)
	x := len([]rune(status))

	runText := "[space] " + runLabel + "  "
	dst.DrawTextColor(x, y, runText, g.palette.HUD)
	x += len([]rune(runText))

	dst.DrawTextColor(x, y, "[e] "+eraserLabel, eraserColor)
}
