package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopResults(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Seed: 1, Turns: 120, MaxTile: 256, TileSum: 700},
		{Seed: 2, Turns: 300, MaxTile: 1024, TileSum: 2100},
		{Seed: 3, Turns: 90, MaxTile: 256, TileSum: 800, Origin: OriginSim},
		{Seed: 4, Turns: 40, MaxTile: 64, TileSum: 200},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Highest tile first, ties broken by tile sum
	wantSeeds := []int64{2, 3, 1}
	for i, seed := range wantSeeds {
		if top[i].Seed != seed {
			t.Errorf("top[%d].Seed = %d, want %d", i, top[i].Seed, seed)
		}
	}

	if top[0].Origin != OriginPlay {
		t.Errorf("default origin = %q, want %q", top[0].Origin, OriginPlay)
	}
	if top[1].Origin != OriginSim {
		t.Errorf("origin = %q, want %q", top[1].Origin, OriginSim)
	}
	if top[0].Turns != 300 || top[0].TileSum != 2100 {
		t.Errorf("unexpected fields: %+v", top[0])
	}
}

func TestStoreTopResultsDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveResult(Result{Seed: int64(i), Turns: i, MaxTile: 2, TileSum: 4}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(0)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		if _, err := store.SaveResult(Result{Seed: int64(i), MaxTile: 8, TileSum: 16}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(recent))
	}

	// Same-second inserts fall back to insertion order, newest first
	if recent[0].Seed != 3 || recent[1].Seed != 2 {
		t.Errorf("recent seeds = %d, %d; want 3, 2", recent[0].Seed, recent[1].Seed)
	}

	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreBestTile(t *testing.T) {
	store := openTestStore(t)

	// Empty database
	best, err := store.BestTile()
	if err != nil {
		t.Fatalf("BestTile() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty database, got %d", best)
	}

	store.SaveResult(Result{MaxTile: 128, TileSum: 300})
	store.SaveResult(Result{MaxTile: 512, TileSum: 900})
	store.SaveResult(Result{MaxTile: 64, TileSum: 100})

	best, err = store.BestTile()
	if err != nil {
		t.Fatalf("BestTile() failed: %v", err)
	}
	if best != 512 {
		t.Errorf("Expected best tile 512, got %d", best)
	}
}

func TestStoreGetStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Games != 0 || stats.BestTile != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty database: %+v", stats)
	}

	store.SaveResult(Result{Turns: 100, MaxTile: 128, TileSum: 300})
	store.SaveResult(Result{Turns: 50, MaxTile: 256, TileSum: 500})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.Games != 2 {
		t.Errorf("Games = %d, want 2", stats.Games)
	}
	if stats.BestTile != 256 {
		t.Errorf("BestTile = %d, want 256", stats.BestTile)
	}
	if stats.AvgMaxTile != 192 {
		t.Errorf("AvgMaxTile = %v, want 192", stats.AvgMaxTile)
	}
	if stats.TotalTurns != 150 {
		t.Errorf("TotalTurns = %d, want 150", stats.TotalTurns)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{MaxTile: 32, TileSum: 60})
	store.SaveResult(Result{MaxTile: 64, TileSum: 120})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
}

func TestExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tmpSubdir := filepath.Join(home, ".t2048-test-"+t.Name())
	defer os.RemoveAll(tmpSubdir)

	dbPath := "~/.t2048-test-" + t.Name() + "/test.db"
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	expectedPath := filepath.Join(tmpSubdir, "test.db")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("Database not created at expanded path: %s", expectedPath)
	}
}
