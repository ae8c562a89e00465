// Package storage keeps the per-process session ledger of finished matches.
// The database lives in memory only and is gone when the process exits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/game"
)

// Ledger records match results for the lifetime of the process.
type Ledger struct {
	db *sql.DB
}

// MatchRecord is a single finished or abandoned match.
type MatchRecord struct {
	ID        int64
	Session   string
	Left      int
	Right     int
	Winner    string // "left", "right" or empty when stopped early
	EndReason string // "completed" or "stopped"
	Duration  time.Duration
	CreatedAt time.Time
}

// Tally aggregates the matches of one session.
type Tally struct {
	Matches   int
	LeftWins  int
	RightWins int
	Stopped   int
}

// OpenMemory creates a fresh in-memory ledger and runs migrations.
func OpenMemory() (*Ledger, error) {
	db, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}

	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the database schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			score_left INTEGER NOT NULL DEFAULT 0,
			score_right INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			end_reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_session ON matches(session);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding all records.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record stores a match and returns the ID of the inserted row.
func (l *Ledger) Record(rec MatchRecord) (int64, error) {
	res, err := l.db.Exec(
		`INSERT INTO matches (session, score_left, score_right, winner, end_reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Session,
		rec.Left,
		rec.Right,
		rec.Winner,
		rec.EndReason,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveMatchResult adapts a game.MatchResult into a ledger row.
func (l *Ledger) SaveMatchResult(session string, res game.MatchResult) error {
	rec := MatchRecord{
		Session:   session,
		Left:      res.Left,
		Right:     res.Right,
		EndReason: string(res.Reason),
		Duration:  res.Duration,
	}
	if res.Winner != game.SideNone {
		rec.Winner = res.Winner.String()
	}
	_, err := l.Record(rec)
	return err
}

// Recent retrieves the most recent matches of a session, newest first.
// An empty session selects matches of every session.
func (l *Ledger) Recent(session string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.Query(
		`SELECT id, session, score_left, score_right, winner, end_reason, duration_ms, created_at
		 FROM matches
		 WHERE ? = '' OR session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var durationMS int64
		var createdAt any

		if err := rows.Scan(
			&rec.ID,
			&rec.Session,
			&rec.Left,
			&rec.Right,
			&rec.Winner,
			&rec.EndReason,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			rec.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.CreatedAt = parsed
			}
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Tally returns aggregated results for a session.
func (l *Ledger) Tally(session string) (Tally, error) {
	var t Tally
	err := l.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'left' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'right' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN end_reason = 'stopped' THEN 1 ELSE 0 END), 0)
		 FROM matches WHERE session = ?`,
		session,
	).Scan(&t.Matches, &t.LeftWins, &t.RightWins, &t.Stopped)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot compute tally: %w", err)
	}
	return t, nil
}
