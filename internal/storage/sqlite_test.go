package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(pattern string, gens int, reason string) core.RunSummary {
	return core.RunSummary{
		Pattern:           pattern,
		Width:             80,
		Height:            22,
		Generations:       gens,
		PeakPopulation:    gens * 2,
		InitialPopulation: 5,
		EndReason:         reason,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []core.RunSummary{
		run("glider", 100, "cleared"),
		run("", 50, "extinct"),
		run("diehard", 130, "extinct"),
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Generations != 130 || runs[1].Generations != 100 || runs[2].Generations != 50 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Pattern != "diehard" || runs[0].EndReason != "extinct" || runs[0].PeakPopulation != 260 {
		t.Errorf("Fields not round-tripped: %+v", runs[0])
	}
	if runs[0].Width != 80 || runs[0].Height != 22 || runs[0].InitialPopulation != 5 {
		t.Errorf("Board fields not round-tripped: %+v", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(run("", (i+1)*100, "extinct"))
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Generations != 500 || runs[1].Generations != 400 || runs[2].Generations != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStoreRecentAndPatternRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("glider", 10, "cleared"))
	store.SaveRun(run("acorn", 900, "quit"))
	store.SaveRun(run("glider", 40, "quit"))

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Generations != 40 || recent[1].Generations != 900 {
		t.Errorf("RecentRuns() = %+v", recent)
	}

	gliders, err := store.PatternRuns("glider", 10)
	if err != nil {
		t.Fatalf("PatternRuns() failed: %v", err)
	}
	if len(gliders) != 2 || gliders[0].Generations != 40 {
		t.Errorf("PatternRuns() = %+v", gliders)
	}
}

func TestStoreLongestRun(t *testing.T) {
	store := openTestStore(t)

	longest, err := store.LongestRun()
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if longest != 0 {
		t.Errorf("Expected 0 for empty store, got %d", longest)
	}

	store.SaveRun(run("", 100, "extinct"))
	store.SaveRun(run("", 300, "quit"))
	store.SaveRun(run("", 200, "extinct"))

	longest, err = store.LongestRun()
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if longest != 300 {
		t.Errorf("Expected longest run of 300, got %d", longest)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats %+v", empty)
	}

	store.SaveRun(run("", 10, "extinct"))
	store.SaveRun(run("", 30, "quit"))
	store.SaveRun(run("", 20, "extinct"))

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Extinctions != 2 || stats.LongestRun != 30 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.TotalGenerations != 60 || stats.AvgGenerations != 20 || stats.PeakPopulation != 60 {
		t.Errorf("unexpected aggregates %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("", 10, "extinct"))
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
