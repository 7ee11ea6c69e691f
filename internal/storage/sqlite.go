// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrDuplicateSolve is returned when a round has already been recorded.
var ErrDuplicateSolve = errors.New("storage: round already recorded")

// Store manages the SQLite database connection for solve history.
type Store struct {
	db *sql.DB
}

// Solve is one finished round.
type Solve struct {
	ID         int64
	RoundID    string
	GameID     string
	Difficulty string
	Moves      int
	Duration   time.Duration
	CreatedAt  time.Time
}

// SolveStats aggregates the solves of one difficulty.
type SolveStats struct {
	Difficulty   string
	Count        int
	BestMoves    int
	AvgMoves     float64
	BestDuration time.Duration
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_difficulty ON solves(difficulty);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(difficulty, moves ASC, duration_ms ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSolve records a finished round and returns the row ID.
// Saving the same RoundID twice returns ErrDuplicateSolve.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.RoundID == "" {
		return 0, errors.New("storage: solve has no round ID")
	}

	result, err := s.db.Exec(
		`INSERT INTO solves (round_id, game_id, difficulty, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(round_id) DO NOTHING`,
		solve.RoundID, solve.GameID, solve.Difficulty, solve.Moves, solve.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}
	if n == 0 {
		return 0, ErrDuplicateSolve
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves returns the best N solves for a difficulty, fewest moves
// first and then fastest. An empty difficulty covers all tiers.
func (s *Store) BestSolves(difficulty string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, game_id, difficulty, moves, duration_ms, created_at
		 FROM solves
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// RecentSolves returns the most recently recorded solves.
func (s *Store) RecentSolves(limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, game_id, difficulty, moves, duration_ms, created_at
		 FROM solves
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	defer rows.Close()

	var entries []Solve
	for rows.Next() {
		var e Solve
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RoundID, &e.GameID, &e.Difficulty, &e.Moves, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns aggregated statistics for one difficulty.
// A difficulty with no solves yields zero values.
func (s *Store) Stats(difficulty string) (*SolveStats, error) {
	stats := &SolveStats{Difficulty: difficulty}

	var bestMs int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0),
		        COALESCE(MIN(duration_ms), 0), MAX(created_at)
		 FROM solves WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Count, &stats.BestMoves, &stats.AvgMoves, &bestMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get solve stats: %w", err)
	}

	stats.BestDuration = time.Duration(bestMs) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllStats returns statistics for every difficulty that has solves.
func (s *Store) AllStats() (map[string]*SolveStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MIN(moves), AVG(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SolveStats)
	for rows.Next() {
		var st SolveStats
		var bestMs int64
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Count, &st.BestMoves, &st.AvgMoves, &bestMs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestDuration = time.Duration(bestMs) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSolves deletes all solves for the given difficulty.
func (s *Store) ClearSolves(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTime handles both driver-decoded times and raw SQLite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
