package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps scores in a local SQLite file.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
type SQLiteStore struct {
	db   *sql.DB
	keep int
	now  func() time.Time
}

var _ ScoreStore = (*SQLiteStore)(nil)

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string, keep int) (*SQLiteStore, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db, keep: normalizeKeep(keep), now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// seq keeps insertion order for runs with equal times.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			board_size INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_fastest ON scores(board_size, elapsed_secs ASC, seq ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AddScore records a run, trims the board to the fastest runs and reports
// where the new run landed.
func (s *SQLiteStore) AddScore(ctx context.Context, boardSize int, elapsedSeconds int64) (ScoreEntry, error) {
	if elapsedSeconds < 0 {
		return ScoreEntry{}, ErrNegativeElapsed
	}

	entry := ScoreEntry{
		ID:             uuid.NewString(),
		BoardSize:      boardSize,
		ElapsedSeconds: elapsedSeconds,
		CreatedAt:      s.now().UTC().Truncate(time.Millisecond),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO scores (run_id, board_size, elapsed_secs, created_at) VALUES (?, ?, ?, ?)",
		entry.ID, boardSize, elapsedSeconds, entry.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM scores
		 WHERE board_size = ? AND seq NOT IN (
			SELECT seq FROM scores
			WHERE board_size = ?
			ORDER BY elapsed_secs ASC, seq ASC
			LIMIT ?
		 )`,
		boardSize, boardSize, s.keep,
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot trim scores: %w", err)
	}

	var kept int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM scores WHERE seq = ?", seq,
	).Scan(&kept); err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot query rank: %w", err)
	}
	if kept > 0 {
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) + 1 FROM scores
			 WHERE board_size = ? AND (elapsed_secs < ? OR (elapsed_secs = ? AND seq < ?))`,
			boardSize, elapsedSeconds, elapsedSeconds, seq,
		).Scan(&entry.Rank); err != nil {
			return ScoreEntry{}, fmt.Errorf("storage: cannot query rank: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return entry, nil
}

// Scores returns the kept runs for boardSize, fastest first.
func (s *SQLiteStore) Scores(ctx context.Context, boardSize int) ([]ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, board_size, elapsed_secs, created_at
		 FROM scores
		 WHERE board_size = ?
		 ORDER BY elapsed_secs ASC, seq ASC
		 LIMIT ?`,
		boardSize, s.keep,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.BoardSize, &e.ElapsedSeconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdAt).UTC()
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BoardSizes lists board sizes with at least one run.
func (s *SQLiteStore) BoardSizes(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT board_size FROM scores ORDER BY board_size ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query board sizes: %w", err)
	}
	defer rows.Close()

	var sizes []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sizes = append(sizes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sizes, nil
}

// ClearScores deletes all runs for boardSize.
func (s *SQLiteStore) ClearScores(ctx context.Context, boardSize int) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scores WHERE board_size = ?", boardSize)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
