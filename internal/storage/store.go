// Package storage persists solve times per board size. Each board keeps
// only its fastest runs; reads return them fastest first.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultKeep is how many runs are kept per board size unless configured.
const DefaultKeep = 10

// DefaultPath is the SQLite database used when no store is configured.
const DefaultPath = "~/.queens/scores.db"

// ErrNegativeElapsed is returned when a run reports a negative duration.
var ErrNegativeElapsed = errors.New("storage: elapsed time must not be negative")

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID             string // run ID (UUID)
	BoardSize      int
	ElapsedSeconds int64
	CreatedAt      time.Time
	Rank           int // 1-based position among kept runs; 0 when AddScore dropped it
}

// Elapsed returns the run time as a duration.
func (e ScoreEntry) Elapsed() time.Duration {
	return time.Duration(e.ElapsedSeconds) * time.Second
}

// ScoreStore is implemented by every score backend.
type ScoreStore interface {
	// AddScore records a run and trims the board's list to the fastest
	// Keep runs. The returned entry has Rank 0 when the run was too slow
	// to be kept.
	AddScore(ctx context.Context, boardSize int, elapsedSeconds int64) (ScoreEntry, error)

	// Scores returns the kept runs for a board size, fastest first. Ties
	// keep insertion order.
	Scores(ctx context.Context, boardSize int) ([]ScoreEntry, error)

	// BoardSizes lists board sizes that have at least one run, ascending.
	BoardSizes(ctx context.Context) ([]int, error)

	// ClearScores deletes every run for a board size.
	ClearScores(ctx context.Context, boardSize int) error

	Close() error
}

// Open picks a backend from target: a redis:// or rediss:// URL opens a
// RedisStore, anything else is a SQLite path. Empty target means DefaultPath.
// keep <= 0 means DefaultKeep.
func Open(ctx context.Context, target string, keep int) (ScoreStore, error) {
	if strings.HasPrefix(target, "redis://") || strings.HasPrefix(target, "rediss://") {
		s, err := OpenRedis(ctx, target, keep)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	if target == "" {
		target = DefaultPath
	}
	s, err := OpenSQLite(target, keep)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func normalizeKeep(keep int) int {
	if keep <= 0 {
		return DefaultKeep
	}
	return keep
}
