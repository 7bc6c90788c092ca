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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "powerup", Score: 100, Level: 1, Survived: 10},
		{GameID: "powerup", Score: 50, Level: 1, Survived: 5},
		{GameID: "powerup", Score: 1200, Level: 3, Survived: 120.5},
		{GameID: "other", Score: 500, Level: 2},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("powerup", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 1200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %+v", top)
	}
	if top[0].Level != 3 || top[0].Survived != 120.5 {
		t.Errorf("Best run lost its details: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}

	other, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for other game, got %d", len(other))
	}
}

func TestStoreRejectsMissingGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "powerup", Score: (i + 1) * 100, Level: 1})
	}

	top, err := store.TopRuns("powerup", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(Run{GameID: "powerup", Score: 300, Level: 1})
	second, _ := store.SaveRun(Run{GameID: "powerup", Score: 300, Level: 2})

	top, err := store.TopRuns("powerup", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].ID != first || top[1].ID != second {
		t.Errorf("Expected earlier run first on a tie, got %+v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("powerup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveRun(Run{GameID: "powerup", Score: 100})
	store.SaveRun(Run{GameID: "powerup", Score: 300})
	store.SaveRun(Run{GameID: "powerup", Score: 200})

	high, err = store.HighScore("powerup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "powerup", Score: 100})
	store.SaveRun(Run{GameID: "powerup", Score: 200})
	store.SaveRun(Run{GameID: "other", Score: 300})

	if err := store.ClearRuns("powerup"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.AllRuns("powerup"); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.AllRuns("other"); len(runs) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(Run{GameID: "powerup", Score: i * 10})
	}

	runs, err := store.AllRuns("powerup")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("powerup")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "powerup", Score: 100, Level: 1, Survived: 10})
	store.SaveRun(Run{GameID: "powerup", Score: 700, Level: 2, Survived: 70})

	stats, err := store.Stats("powerup")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 700 || stats.BestLevel != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 400 || stats.TotalPlayed != 80 {
		t.Errorf("Unexpected averages: avg=%g total=%g", stats.AvgScore, stats.TotalPlayed)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
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
