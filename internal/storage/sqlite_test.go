package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T, keep int) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), keep)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	calls := 0
	store.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	return store
}

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "scores.db")

	store, err := OpenSQLite(dbPath, 0)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.keep != DefaultKeep {
		t.Errorf("keep = %d, expected %d", store.keep, DefaultKeep)
	}
}

func TestSQLiteScoresAscending(t *testing.T) {
	store := openTestStore(t, 10)
	ctx := context.Background()

	for _, secs := range []int64{42, 7, 19} {
		if _, err := store.AddScore(ctx, 8, secs); err != nil {
			t.Fatalf("AddScore() failed: %v", err)
		}
	}
	// Different board
	if _, err := store.AddScore(ctx, 5, 3); err != nil {
		t.Fatalf("AddScore() failed: %v", err)
	}

	scores, err := store.Scores(ctx, 8)
	if err != nil {
		t.Fatalf("Scores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int64{7, 19, 42}
	for i, e := range scores {
		if e.ElapsedSeconds != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.ElapsedSeconds, expected[i])
		}
		if e.Rank != i+1 {
			t.Errorf("scores[%d].Rank = %d, expected %d", i, e.Rank, i+1)
		}
		if e.BoardSize != 8 {
			t.Errorf("scores[%d].BoardSize = %d", i, e.BoardSize)
		}
		if e.ID == "" || e.CreatedAt.IsZero() {
			t.Errorf("scores[%d] missing ID or timestamp: %+v", i, e)
		}
	}

	five, _ := store.Scores(ctx, 5)
	if len(five) != 1 || five[0].ElapsedSeconds != 3 {
		t.Errorf("board 5 scores = %+v", five)
	}
}

func TestSQLiteKeepsFastest(t *testing.T) {
	store := openTestStore(t, 3)
	ctx := context.Background()

	for _, secs := range []int64{30, 10, 20} {
		if _, err := store.AddScore(ctx, 6, secs); err != nil {
			t.Fatal(err)
		}
	}

	// Slower than every kept run: dropped
	slow, err := store.AddScore(ctx, 6, 99)
	if err != nil {
		t.Fatal(err)
	}
	if slow.Rank != 0 {
		t.Errorf("slow run Rank = %d, expected 0", slow.Rank)
	}

	// Faster than the slowest: kept, evicts 30
	fast, err := store.AddScore(ctx, 6, 15)
	if err != nil {
		t.Fatal(err)
	}
	if fast.Rank != 2 {
		t.Errorf("fast run Rank = %d, expected 2", fast.Rank)
	}

	scores, _ := store.Scores(ctx, 6)
	got := make([]int64, 0, len(scores))
	for _, e := range scores {
		got = append(got, e.ElapsedSeconds)
	}
	expected := []int64{10, 15, 20}
	if len(got) != len(expected) {
		t.Fatalf("scores = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("scores = %v, expected %v", got, expected)
			break
		}
	}
}

func TestSQLiteTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t, 2)
	ctx := context.Background()

	first, _ := store.AddScore(ctx, 4, 5)
	second, _ := store.AddScore(ctx, 4, 5)
	third, _ := store.AddScore(ctx, 4, 5)

	if first.Rank != 1 || second.Rank != 2 {
		t.Errorf("ranks = %d, %d, expected 1, 2", first.Rank, second.Rank)
	}
	if third.Rank != 0 {
		t.Errorf("third tie should be dropped, Rank = %d", third.Rank)
	}

	scores, _ := store.Scores(ctx, 4)
	if len(scores) != 2 || scores[0].ID != first.ID || scores[1].ID != second.ID {
		t.Errorf("scores = %+v", scores)
	}
}

func TestSQLiteBoardSizesAndClear(t *testing.T) {
	store := openTestStore(t, 10)
	ctx := context.Background()

	for _, n := range []int{12, 4, 8, 4} {
		if _, err := store.AddScore(ctx, n, 1); err != nil {
			t.Fatal(err)
		}
	}

	sizes, err := store.BoardSizes(ctx)
	if err != nil {
		t.Fatalf("BoardSizes() failed: %v", err)
	}
	if len(sizes) != 3 || sizes[0] != 4 || sizes[1] != 8 || sizes[2] != 12 {
		t.Errorf("BoardSizes() = %v, expected [4 8 12]", sizes)
	}

	if err := store.ClearScores(ctx, 4); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.Scores(ctx, 4)
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
	sizes, _ = store.BoardSizes(ctx)
	if len(sizes) != 2 {
		t.Errorf("BoardSizes() after clear = %v", sizes)
	}
}

func TestSQLiteRejectsNegativeElapsed(t *testing.T) {
	store := openTestStore(t, 10)

	_, err := store.AddScore(context.Background(), 8, -1)
	if !errors.Is(err, ErrNegativeElapsed) {
		t.Errorf("AddScore(-1) error = %v, expected ErrNegativeElapsed", err)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	store, err := OpenSQLite(dbPath, 10)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddScore(ctx, 8, 64); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = OpenSQLite(dbPath, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	scores, _ := store.Scores(ctx, 8)
	if len(scores) != 1 || scores[0].ElapsedSeconds != 64 {
		t.Errorf("scores after reopen = %+v", scores)
	}
}

func TestOpenPicksBackend(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, filepath.Join(t.TempDir(), "x.db"), 3)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("Open(path) = %T, expected *SQLiteStore", s)
	}

	if _, err := Open(ctx, "redis://%zz", 3); err == nil {
		t.Error("Open() with a malformed redis URL should fail")
	}
}
