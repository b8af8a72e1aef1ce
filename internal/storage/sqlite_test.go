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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

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

	for _, entry := range []struct{ score, maxTile int }{
		{100, 64},
		{50, 32},
		{200, 128},
	} {
		if _, err := store.SaveScore(4, entry.score, entry.maxTile); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different board size keeps its own leaderboard.
	if _, err := store.SaveScore(5, 500, 256); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(4, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, want 3", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not in descending order: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}
	if scores[0].MaxTile != 128 {
		t.Errorf("top entry MaxTile = %d, want 128", scores[0].MaxTile)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(4)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty store = %d, want 0", high)
	}

	store.SaveScore(4, 300, 256)
	store.SaveScore(4, 700, 512)
	store.SaveScore(4, 100, 64)

	high, err = store.HighScore(4)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("HighScore() = %d, want 700", high)
	}
}

func TestStoreBestTile(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(4, 300, 256)
	store.SaveScore(4, 250, 512)

	best, err := store.BestTile(4)
	if err != nil {
		t.Fatalf("BestTile() failed: %v", err)
	}
	if best != 512 {
		t.Errorf("BestTile() = %d, want 512", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(4, 100, 64)
	store.SaveScore(5, 200, 128)

	if err := store.ClearScores(4); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(4, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("TopScores(4) after clear returned %d entries, want 0", len(scores))
	}

	// Other board sizes untouched.
	scores, err = store.TopScores(5, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("TopScores(5) returned %d entries, want 1", len(scores))
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		store.SaveScore(4, i*10, 64)
	}

	scores, err := store.TopScores(4, 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("TopScores() returned %d entries, want 5", len(scores))
	}
	if scores[0].Score != 150 {
		t.Errorf("top score = %d, want 150", scores[0].Score)
	}
}
