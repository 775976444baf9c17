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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("bomber", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(ScoreEntry{GameID: "bomber_duel", Mode: "duel", Score: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
		if e.Mode != "single" {
			t.Errorf("scores[%d].Mode = %q, expected single", i, e.Mode)
		}
		if e.RunID == "" {
			t.Errorf("scores[%d] has no run id", i)
		}
	}
	if scores[0].RunID == scores[1].RunID {
		t.Error("run ids should be unique")
	}

	duelScores, err := store.TopScores("bomber_duel", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(duelScores) != 1 || duelScores[0].Mode != "duel" {
		t.Errorf("Expected 1 duel score, got %+v", duelScores)
	}
}

func TestStoreSaveRunKeepsFields(t *testing.T) {
	store := openTestStore(t)

	run := ScoreEntry{RunID: "run-1", GameID: "bomber", Score: 700, MapsCleared: 3}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.AllScores("bomber")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.RunID != "run-1" || got.MapsCleared != 3 || got.Score != 700 {
		t.Errorf("stored run = %+v", got)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("bomber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("bomber", 100)
	store.SaveScore("bomber", 300)
	store.SaveScore("bomber", 200)

	high, err = store.HighScore("bomber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSetHighScoreOnlyRaises(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score   int
		changed bool
		high    int
	}{
		{400, true, 400},
		{300, false, 400},
		{400, false, 400},
		{900, true, 900},
	}

	for _, tt := range tests {
		changed, err := store.SetHighScore("bomber", tt.score, "")
		if err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", tt.score, err)
		}
		if changed != tt.changed {
			t.Errorf("SetHighScore(%d) changed = %v, expected %v", tt.score, changed, tt.changed)
		}
		high, _ := store.HighScore("bomber")
		if high != tt.high {
			t.Errorf("after SetHighScore(%d) high = %d, expected %d", tt.score, high, tt.high)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bomber", 100)
	store.SaveScore("bomber", 200)
	store.SetHighScore("bomber", 900, "")
	store.SaveScore("other", 300)

	if err := store.ClearScores("bomber"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("bomber", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("bomber"); high != 0 {
		t.Errorf("high score record should be cleared, got %d", high)
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("other scores should not be affected by clearing bomber")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bomber", 100)
	store.SaveScore("bomber", 300)

	stats, err := store.GetGameStats("bomber")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["bomber"] == nil {
		t.Errorf("GetAllGamesStats() = %v", all)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
