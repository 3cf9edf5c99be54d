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

func entry(gameID string, level, moves, score, total int) ResultEntry {
	return ResultEntry{
		GameID:  gameID,
		Level:   level,
		Size:    4,
		Palette: 3,
		Moves:   moves,
		Optimal: moves,
		Score:   score,
		Total:   total,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave := func(e ResultEntry) {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	mustSave(entry("chroma", 1, 8, 100, 100))
	mustSave(entry("chroma", 2, 9, 110, 210))
	mustSave(entry("chroma", 3, 10, 120, 330))

	// Different variant
	mustSave(entry("zen", 1, 12, 90, 90))

	results, err := store.TopResults("chroma", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Sorted by running total descending
	if results[0].Total != 330 || results[1].Total != 210 || results[2].Total != 100 {
		t.Errorf("Results not in expected order: %v", results)
	}
	if results[0].Level != 3 || results[0].Moves != 10 {
		t.Errorf("Result fields did not survive: %+v", results[0])
	}

	zenResults, err := store.TopResults("zen", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(zenResults) != 1 {
		t.Errorf("Expected 1 zen result, got %d", len(zenResults))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(entry("chroma", i+1, 8, 100, (i+1)*100))
	}

	results, err := store.TopResults("chroma", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}

	if results[0].Total != 500 || results[1].Total != 400 || results[2].Total != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreBestTotal(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	best, err := store.BestTotal("chroma")
	if err != nil {
		t.Fatalf("BestTotal() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best total of 0 for empty game, got %d", best)
	}

	store.SaveResult(entry("chroma", 1, 8, 100, 100))
	store.SaveResult(entry("chroma", 2, 9, 110, 210))

	best, err = store.BestTotal("chroma")
	if err != nil {
		t.Fatalf("BestTotal() failed: %v", err)
	}
	if best != 210 {
		t.Errorf("Expected best total of 210, got %d", best)
	}
}

func TestStoreDeepestLevel(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(entry("chroma", 1, 8, 100, 100))
	store.SaveResult(entry("chroma", 7, 9, 110, 800))
	store.SaveResult(entry("chroma", 3, 10, 120, 330))

	deepest, err := store.DeepestLevel("chroma")
	if err != nil {
		t.Fatalf("DeepestLevel() failed: %v", err)
	}
	if deepest != 7 {
		t.Errorf("Expected deepest level 7, got %d", deepest)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(entry("chroma", 1, 8, 100, 100))
	store.SaveResult(entry("chroma", 2, 9, 110, 210))
	store.SaveResult(entry("zen", 1, 12, 90, 90))

	if err := store.ClearResults("chroma"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	chromaResults, _ := store.TopResults("chroma", 10)
	if len(chromaResults) != 0 {
		t.Errorf("Expected 0 chroma results after clear, got %d", len(chromaResults))
	}

	zenResults, _ := store.TopResults("zen", 10)
	if len(zenResults) != 1 {
		t.Errorf("Zen results should not be affected by clearing chroma")
	}
}

func TestStoreStatsFor(t *testing.T) {
	store := openTestStore(t)

	e1 := entry("chroma", 1, 8, 100, 100)
	e1.Hints = 2
	store.SaveResult(e1)
	store.SaveResult(entry("chroma", 2, 12, 110, 210))

	stats, err := store.StatsFor("chroma")
	if err != nil {
		t.Fatalf("StatsFor() failed: %v", err)
	}

	if stats.LevelsCleared != 2 {
		t.Errorf("LevelsCleared = %d, expected 2", stats.LevelsCleared)
	}
	if stats.BestTotal != 210 || stats.DeepestLevel != 2 {
		t.Errorf("unexpected aggregates: %+v", stats)
	}
	if stats.AvgMoves != 10 {
		t.Errorf("AvgMoves = %f, expected 10", stats.AvgMoves)
	}
	if stats.HintsUsed != 2 {
		t.Errorf("HintsUsed = %d, expected 2", stats.HintsUsed)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
