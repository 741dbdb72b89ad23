package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	_ "github.com/vovakirdan/tui-life/internal/patterns" // Register built-in patterns
	"github.com/vovakirdan/tui-life/internal/storage"
)

func newTestGameModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	m := NewGameModel(GameOptions{
		Life:    config.DefaultLifeConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1},
		Store:   store,
	})
	m.Init()
	return m
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next, cmd
}

func TestGameModelMousePaintsOnTick(t *testing.T) {
	m := newTestGameModel(t, nil)

	next, _ := update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	next, cmd := update(t, next, TickMsg{ID: m.tickID})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	gm := next.(GameModel)
	if !gm.game.Grid().IsLive(3, 4) {
		t.Error("left press should paint the cell under the pointer")
	}
	if gm.State().Population != 1 {
		t.Errorf("population = %d, want 1", gm.State().Population)
	}
	if b := gm.game.Grid().Bounds(); b.H != 22 {
		t.Errorf("board height = %d, want 22 (HUD and help bar reserved)", b.H)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := newTestGameModel(t, nil)

	_, cmd := update(t, m, TickMsg{ID: m.tickID + 1000})
	if cmd != nil {
		t.Error("a tick from another board must not continue the loop")
	}
}

func TestGameModelKeys(t *testing.T) {
	m := newTestGameModel(t, nil)

	next, _ := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	next, _ = update(t, next, TickMsg{ID: m.tickID})
	if !next.(GameModel).State().Running {
		t.Error("space should start the loop")
	}

	next, cmd := update(t, next, tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() {
		t.Error("esc should request the menu")
	}
	if cmd != nil {
		t.Error("back inside a session should not quit the program")
	}

	_, cmd = update(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestGameModelSavesRunOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGameModel(t, store)
	var next tea.Model = m
	for _, p := range [][2]int{{10, 10}, {11, 10}, {10, 11}, {11, 11}} {
		next, _ = update(t, next, tea.MouseMsg{X: p[0], Y: p[1], Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	}
	next, _ = update(t, next, runeKey('n'))
	next, _ = update(t, next, TickMsg{ID: m.tickID})
	next, _ = update(t, next, runeKey('q'))

	if !next.(GameModel).IsQuitting() {
		t.Fatal("q should quit")
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].EndReason != "quit" || runs[0].Generations != 1 || runs[0].InitialPopulation != 4 {
		t.Errorf("unexpected run %+v", runs[0])
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestGameModel(t, nil)
	view := m.View()
	for _, want := range []string{"Start simulation", "start/pause"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuListsPatterns(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if len(m.items) < 2 || m.items[0].Pattern != "" {
		t.Fatalf("first item should be the blank board, got %+v", m.items)
	}
	found := false
	for _, it := range m.items {
		if it.Pattern == "glider" {
			found = true
			if it.Population != 5 {
				t.Errorf("glider population = %d, want 5", it.Population)
			}
		}
	}
	if !found {
		t.Error("menu should list the glider")
	}

	next, _ := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	next, _ = update(t, next, tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.Pattern != m.items[1].Pattern {
		t.Errorf("Selected() = %+v, want %+v", sel, m.items[1])
	}
}

func TestRunsModelLoadsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(core.RunSummary{Pattern: "acorn", Width: 80, Height: 22, Generations: 300, EndReason: "quit"})
	store.SaveRun(core.RunSummary{Width: 80, Height: 22, Generations: 12, EndReason: "extinct"})

	m := NewRunsModel(store, 120, 30)
	if len(m.runs) != 2 || m.runs[0].Generations != 300 {
		t.Fatalf("longest view = %+v", m.runs)
	}
	if m.stats == nil || m.stats.Runs != 2 {
		t.Errorf("stats = %+v", m.stats)
	}
	if !strings.Contains(m.View(), "RUNS - Longest") {
		t.Error("view should show the longest tab")
	}

	next, _ := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	rm := next.(RunsModel)
	if runsViews[rm.view] != RunsRecent || rm.runs[0].Generations != 12 {
		t.Errorf("recent view = %+v", rm.runs)
	}

	next, _ = update(t, rm, tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(RunsModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(SessionOptions{
		Life:    config.DefaultLifeConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
	})

	next, _ := update(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	sm := next.(SessionModel)
	if sm.game == nil {
		t.Fatal("enter should open a board")
	}

	next, _ = update(t, sm, runeKey('+'))
	next, _ = update(t, next, TickMsg{ID: sm.game.tickID})
	next, _ = update(t, next, tea.KeyMsg{Type: tea.KeyEsc})
	sm = next.(SessionModel)
	if sm.game != nil {
		t.Fatal("esc should return to the menu")
	}
	if sm.opts.Life.Simulation.IntervalMS != 100 {
		t.Errorf("speed change should carry over, interval = %d", sm.opts.Life.Simulation.IntervalMS)
	}

	next, _ = update(t, sm, tea.KeyMsg{Type: tea.KeyTab})
	sm = next.(SessionModel)
	if sm.runs == nil {
		t.Fatal("tab should open the runs board")
	}
	if !strings.Contains(sm.View(), "Run storage is unavailable") {
		t.Error("runs board without a store should say so")
	}

	next, cmd := update(t, sm, runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}
