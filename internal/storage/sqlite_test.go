package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func save(t *testing.T, store *Store, variant string, score int, status string) string {
	t.Helper()
	id, err := store.SaveResult(Result{
		Variant: variant,
		Score:   score,
		Status:  status,
		Piles:   7,
		Draw:    1,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	return id
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

func TestStoreSaveAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id := save(t, store, "basic", 12, "lost")
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveResult() id %q is not a UUID: %v", id, err)
	}

	got, err := store.ResultByID(id)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("ResultByID() = nil, want result")
	}
	if got.Variant != "basic" || got.Score != 12 || got.Status != "lost" || got.Piles != 7 {
		t.Errorf("ResultByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	missing, err := store.ResultByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("ResultByID(unknown) = %v, %v; want nil, nil", missing, err)
	}
}

func TestStoreKeepsCallerID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	id, err := store.SaveResult(Result{ID: want, Variant: "whitehead", Status: "quit", Piles: 7, Draw: 3})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id != want {
		t.Errorf("SaveResult() id = %q, want %q", id, want)
	}
	if _, err := store.SaveResult(Result{ID: want, Variant: "whitehead", Status: "quit"}); err == nil {
		t.Error("duplicate ID should fail")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "basic", 10, "lost")
	save(t, store, "basic", 5, "quit")
	save(t, store, "basic", 52, "won")
	save(t, store, "whitehead", 30, "lost")

	scores, err := store.TopScores("basic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 52 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if !scores[0].Won() || scores[1].Won() {
		t.Errorf("Won() mismatch: %v", scores)
	}

	white, err := store.TopScores("whitehead", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(white) != 1 {
		t.Errorf("Expected 1 whitehead score, got %d", len(white))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "basic", (i+1)*4, "lost")
	}

	scores, err := store.TopScores("basic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 16 || scores[2].Score != 12 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllResults("basic")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 results, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("basic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	save(t, store, "basic", 8, "lost")
	save(t, store, "basic", 31, "lost")
	save(t, store, "basic", 17, "quit")

	high, err = store.HighScore("basic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 31 {
		t.Errorf("Expected high score of 31, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "basic", 1, "lost")
	save(t, store, "basic", 2, "lost")
	save(t, store, "whitehead", 3, "lost")

	if err := store.ClearScores("basic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	basic, _ := store.TopScores("basic", 10)
	if len(basic) != 0 {
		t.Errorf("Expected 0 basic scores after clear, got %d", len(basic))
	}
	white, _ := store.TopScores("whitehead", 10)
	if len(white) != 1 {
		t.Errorf("Whitehead scores should not be affected by clearing basic")
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetVariantStats("basic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Wins != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "basic", 52, "won")
	save(t, store, "basic", 20, "lost")
	save(t, store, "basic", 0, "quit")

	stats, err := store.GetVariantStats("basic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.HighScore != 52 {
		t.Errorf("HighScore = %d, want 52", stats.HighScore)
	}
	if stats.AvgScore != 24 {
		t.Errorf("AvgScore = %v, want 24", stats.AvgScore)
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
