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

	runs := []Run{
		{Score: 1200, Level: 3, Victory: false},
		{Score: 450, Level: 1, Victory: false},
		{Score: 5200, Level: 5, Victory: true},
	}
	for _, r := range runs {
		if _, err := store.SaveScore("puncher", r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	entries, err := store.TopScores("puncher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Sorted by score descending
	if entries[0].Score != 5200 || entries[1].Score != 1200 || entries[2].Score != 450 {
		t.Errorf("wrong order: %d, %d, %d", entries[0].Score, entries[1].Score, entries[2].Score)
	}

	// Level and victory round-trip
	if entries[0].Level != 5 || !entries[0].Victory {
		t.Errorf("best run = level %d victory %v, want 5/true", entries[0].Level, entries[0].Victory)
	}
	if entries[2].Level != 1 || entries[2].Victory {
		t.Errorf("worst run = level %d victory %v, want 1/false", entries[2].Level, entries[2].Victory)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("puncher", Run{Score: i * 100, Level: 1}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	entries, err := store.TopScores("puncher", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("Expected 5 runs with limit, got %d", len(entries))
	}
	if entries[0].Score != 1400 {
		t.Errorf("top score = %d, want 1400", entries[0].Score)
	}
}

func TestAllScoresUnlimited(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveScore("puncher", Run{Score: i * 10, Level: 1}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	entries, err := store.AllScores("puncher")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(entries) != 15 {
		t.Fatalf("AllScores() returned %d entries, want 15", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Fatal("AllScores() not sorted by score descending")
		}
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database returns zero, not an error
	score, err := store.HighScore("puncher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("high score on empty db = %d, want 0", score)
	}

	store.SaveScore("puncher", Run{Score: 300, Level: 2})
	store.SaveScore("puncher", Run{Score: 900, Level: 4})

	score, err = store.HighScore("puncher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 900 {
		t.Errorf("high score = %d, want 900", score)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("puncher", Run{Score: 100, Level: 1})
	store.SaveScore("other", Run{Score: 200, Level: 1})

	if err := store.ClearScores("puncher"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	entries, _ := store.TopScores("puncher", 10)
	if len(entries) != 0 {
		t.Errorf("%d runs left after clear", len(entries))
	}

	// Other games are untouched
	others, _ := store.TopScores("other", 10)
	if len(others) != 1 {
		t.Errorf("clear removed runs of a different game")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("puncher", Run{Score: 100, Level: 2, Victory: false})
	store.SaveScore("puncher", Run{Score: 300, Level: 5, Victory: true})
	store.SaveScore("puncher", Run{Score: 200, Level: 3, Victory: false})

	stats, err := store.GetGameStats("puncher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.Victories != 1 {
		t.Errorf("Victories = %d, want 1", stats.Victories)
	}
	if stats.BestLevel != 5 {
		t.Errorf("BestLevel = %d, want 5", stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}
