package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func run(input string, removed int) RunRecord {
	return RunRecord{
		Input:     input,
		Format:    "text",
		Width:     5,
		Height:    5,
		X:         1,
		Y:         3,
		Removed:   removed,
		DustTotal: 3,
		Steps:     11,
		Host:      "test-host",
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i, r := range []RunRecord{run("a.txt", 1), run("b.txt", 2), run("a.txt", 3)} {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", i, err)
		}
		if id <= 0 {
			t.Errorf("SaveRun(%d) returned id %d", i, id)
		}
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Newest first.
	if runs[0].Removed != 3 || runs[2].Removed != 1 {
		t.Errorf("runs not newest first: %+v", runs)
	}
	got := runs[0]
	if got.Input != "a.txt" || got.Format != "text" || got.X != 1 || got.Y != 3 || got.Steps != 11 || got.Host != "test-host" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	limited, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestStoreSaveFillsHost(t *testing.T) {
	store := openTestStore(t)

	r := run("a.txt", 1)
	r.Host = ""
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, _ := store.RecentRuns(1)
	if len(runs) != 1 || runs[0].Host == "" {
		t.Errorf("host should be filled in, got %+v", runs)
	}
}

func TestStoreRunsForInput(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("a.txt", 1))
	store.SaveRun(run("b.txt", 2))
	store.SaveRun(run("a.txt", 3))

	runs, err := store.RunsForInput("a.txt", 10)
	if err != nil {
		t.Fatalf("RunsForInput() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for a.txt, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Input != "a.txt" {
			t.Errorf("unexpected input %q", r.Input)
		}
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("a.txt")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best run for unknown input, got %+v", best)
	}

	store.SaveRun(run("a.txt", 1))
	first, _ := store.SaveRun(run("a.txt", 3))
	store.SaveRun(run("a.txt", 3))
	store.SaveRun(run("a.txt", 2))

	best, err = store.BestRun("a.txt")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Removed != 3 {
		t.Fatalf("Expected best run with 3 removed, got %+v", best)
	}
	if best.ID != first {
		t.Errorf("ties should resolve to the earliest run: got id %d, expected %d", best.ID, first)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("a.txt", 1))
	store.SaveRun(run("a.txt", 2))
	store.SaveRun(run("b.txt", 3))

	if err := store.ClearRuns("a.txt"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.RunsForInput("a.txt", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs for a.txt after clear, got %d", len(runs))
	}
	if runs, _ := store.RunsForInput("b.txt", 10); len(runs) != 1 {
		t.Error("b.txt runs should not be affected by clearing a.txt")
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(\"\") failed: %v", err)
	}
	if runs, _ := store.RecentRuns(10); len(runs) != 0 {
		t.Errorf("Expected empty history, got %d runs", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("a.txt")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestRemoved != 0 || !stats.LastRun.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(run("a.txt", 1))
	store.SaveRun(run("a.txt", 3))
	store.SaveRun(run("b.txt", 9))

	stats, err = store.Stats("a.txt")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestRemoved != 3 || stats.AvgRemoved != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastRun.IsZero() {
		t.Error("LastRun should be set")
	}
}

func TestHostID(t *testing.T) {
	id := HostID()
	if id == "" {
		t.Fatal("HostID() should never be empty")
	}
	if id != HostID() {
		t.Error("HostID() should be stable")
	}
}
