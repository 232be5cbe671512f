// Package storage provides SQLite-based persistence for played rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Round outcomes as stored in the outcome column.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID         int64
	RoundID    string // UUID, generated on save when empty
	GameID     string
	Buttons    int
	Outcome    string
	DurationMs int64
	CreatedAt  time.Time
}

// Won reports whether the round was won.
func (r Round) Won() bool {
	return r.Outcome == OutcomeWon
}

// ButtonStats aggregates the rounds played with one button count.
type ButtonStats struct {
	Buttons    int
	Played     int
	Wins       int
	BestMs     int64 // fastest win, 0 if never won
	LastPlayed time.Time
}

// WinRate returns the fraction of rounds won.
func (s ButtonStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played)
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			buttons INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_buttons ON rounds(buttons);
		CREATE INDEX IF NOT EXISTS idx_rounds_fastest ON rounds(buttons, outcome, duration_ms);
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

// SaveRound records a finished round and returns the ID of the inserted record.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (round_id, game_id, buttons, outcome, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		r.RoundID, r.GameID, r.Buttons, r.Outcome, r.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RoundByID retrieves a round by its UUID. Returns nil if there is none.
func (s *Store) RoundByID(roundID string) (*Round, error) {
	rounds, err := s.queryRounds(
		`SELECT id, round_id, game_id, buttons, outcome, duration_ms, created_at
		 FROM rounds WHERE round_id = ?`,
		roundID,
	)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}
	return &rounds[0], nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRounds(
		`SELECT id, round_id, game_id, buttons, outcome, duration_ms, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// RoundsByButtons retrieves the most recent rounds played with n buttons.
func (s *Store) RoundsByButtons(n, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRounds(
		`SELECT id, round_id, game_id, buttons, outcome, duration_ms, created_at
		 FROM rounds
		 WHERE buttons = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		n, limit,
	)
}

// FastestWins retrieves the quickest won rounds with n buttons.
func (s *Store) FastestWins(n, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRounds(
		`SELECT id, round_id, game_id, buttons, outcome, duration_ms, created_at
		 FROM rounds
		 WHERE buttons = ? AND outcome = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		n, OutcomeWon, limit,
	)
}

// Stats retrieves aggregated statistics for rounds with n buttons.
func (s *Store) Stats(n int) (*ButtonStats, error) {
	stats := &ButtonStats{Buttons: n}

	var best sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = ? THEN duration_ms END),
		        MAX(created_at)
		 FROM rounds WHERE buttons = ?`,
		OutcomeWon, OutcomeWon, n,
	).Scan(&stats.Played, &stats.Wins, &best, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if best.Valid {
		stats.BestMs = best.Int64
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every button count that has been played.
func (s *Store) AllStats() (map[int]*ButtonStats, error) {
	rows, err := s.db.Query(
		`SELECT buttons, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MIN(CASE WHEN outcome = ? THEN duration_ms END),
		        MAX(created_at)
		 FROM rounds
		 GROUP BY buttons`,
		OutcomeWon, OutcomeWon,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*ButtonStats)
	for rows.Next() {
		var st ButtonStats
		var best sql.NullInt64
		var lastPlayed any
		if err := rows.Scan(&st.Buttons, &st.Played, &st.Wins, &best, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if best.Valid {
			st.BestMs = best.Int64
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Buttons] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRounds deletes every recorded round.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

func (s *Store) queryRounds(query string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RoundID, &r.GameID, &r.Buttons, &r.Outcome, &r.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
