// Package storage persists player progress: a two-line text record for
// local play and a SQLite database holding per-player progress and the
// history of finished attempts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Attempt is one finished attempt of a player.
type Attempt struct {
	ID        int64
	Player    string
	Outcome   string // "win" or "loss"
	Level     int32
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := EnsureDir(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS progress (
			player TEXT PRIMARY KEY,
			level INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			outcome TEXT NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_player ON attempts(player);
		CREATE INDEX IF NOT EXISTS idx_attempts_top ON attempts(score DESC, level DESC);
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

// Progress returns the stored progress of a player, or the initial record
// for a player who has never finished an attempt.
func (s *Store) Progress(player string) (core.Progress, error) {
	var p core.Progress
	err := s.db.QueryRow(
		"SELECT level, max_score FROM progress WHERE player = ?",
		player,
	).Scan(&p.Level, &p.MaxScore)

	if errors.Is(err, sql.ErrNoRows) {
		return core.InitialProgress(), nil
	}
	if err != nil {
		return core.Progress{}, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return p, nil
}

// SaveProgress overwrites the progress of a player.
func (s *Store) SaveProgress(player string, p core.Progress) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (player, level, max_score, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
			level = excluded.level,
			max_score = excluded.max_score,
			updated_at = excluded.updated_at`,
		player, p.Level, p.MaxScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// RecordAttempt stores a finished attempt.
// Returns the ID of the inserted record.
func (s *Store) RecordAttempt(a Attempt) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO attempts (player, outcome, level, score) VALUES (?, ?, ?, ?)",
		a.Player, a.Outcome, a.Level, a.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopAttempts retrieves the best attempts, by score then level.
// An empty player returns attempts of all players.
func (s *Store) TopAttempts(player string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, outcome, level, score, created_at
		 FROM attempts
		 WHERE ? = '' OR player = ?
		 ORDER BY score DESC, level DESC, id ASC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.Player, &a.Outcome, &a.Level, &a.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			a.CreatedAt = v
		case string:
			if parsed, err := time.Parse(time.DateTime, v); err == nil {
				a.CreatedAt = parsed
			}
		}
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return attempts, nil
}

// HighScore returns the best attempt score of a player, or of everyone
// when player is empty. Returns 0 if no attempts exist.
func (s *Store) HighScore(player string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM attempts WHERE ? = '' OR player = ?",
		player, player,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// PlayerProgress binds a Store to one player so it can be used wherever a
// single progress record is saved.
type PlayerProgress struct {
	store  *Store
	player string
}

// ForPlayer returns the progress record of player.
func (s *Store) ForPlayer(player string) *PlayerProgress {
	return &PlayerProgress{store: s, player: player}
}

// Load returns the player's progress.
func (p *PlayerProgress) Load() (core.Progress, error) {
	return p.store.Progress(p.player)
}

// SaveProgress overwrites the player's progress.
func (p *PlayerProgress) SaveProgress(progress core.Progress) error {
	return p.store.SaveProgress(p.player, progress)
}

// RecordAttempt stores a finished attempt for the player.
func (p *PlayerProgress) RecordAttempt(outcome string, level int32, score int) error {
	_, err := p.store.RecordAttempt(Attempt{
		Player:  p.player,
		Outcome: outcome,
		Level:   level,
		Score:   score,
	})
	return err
}
