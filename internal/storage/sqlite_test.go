package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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
		if _, err := store.SaveScore("coins", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("coins_rush", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("coins", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	rush, err := store.TopScores("coins_rush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rush) != 1 || rush[0].Score != 500 {
		t.Errorf("Expected one rush score of 500, got %+v", rush)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		GameID:     "coins",
		Score:      12,
		Spawned:    40,
		Missed:     20,
		Duration:   95 * time.Second,
		Difficulty: "hard",
	}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("coins", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.Spawned != 40 || got.Missed != 20 || got.DurationSecs != 95 || got.Difficulty != "hard" {
		t.Errorf("run fields not round-tripped: %+v", got)
	}
	if acc := got.Accuracy(); acc != 12.0/32.0 {
		t.Errorf("Accuracy() = %v, want %v", acc, 12.0/32.0)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 20; i++ {
		if _, err := store.SaveScore("coins", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("coins", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[4].Score != 160 {
		t.Errorf("unexpected ordering: first=%d last=%d", scores[0].Score, scores[4].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("coins")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty game, got %d", high)
	}

	for _, s := range []int{7, 31, 19} {
		store.SaveScore("coins", s)
	}
	high, err = store.HighScore("coins")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 31 {
		t.Errorf("Expected high score 31, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("coins", 100)
	store.SaveScore("coins", 200)
	store.SaveScore("coins_rush", 300)

	if err := store.ClearScores("coins"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("coins", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	rush, _ := store.TopScores("coins_rush", 10)
	if len(rush) != 1 {
		t.Errorf("Clearing one game touched another: %d rush scores", len(rush))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("coins")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveRun(Run{GameID: "coins", Score: 10, Spawned: 30, Missed: 15, Duration: time.Minute})
	store.SaveRun(Run{GameID: "coins", Score: 30, Spawned: 50, Missed: 10, Duration: 2 * time.Minute})

	stats, err := store.GetGameStats("coins")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("unexpected aggregate: %+v", stats)
	}
	if stats.TotalSpawned != 80 || stats.TotalMissed != 25 || stats.PlaySecs != 180 {
		t.Errorf("unexpected counters: %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["coins"].GamesCount != 2 {
		t.Errorf("unexpected all-games stats: %+v", all)
	}
}
