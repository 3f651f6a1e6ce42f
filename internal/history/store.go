// Package history persists completed conversions to SQLite so the shell can
// show what the user converted before. The engine itself stays stateless;
// this store is a convenience of the surrounding CLI/TUI only.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// Entry is one recorded conversion.
type Entry struct {
	ID        string
	Category  string
	FromUnit  string
	ToUnit    string
	Input     float64
	Result    float64
	CreatedAt time.Time
}

// Store wraps the SQLite conversion log. All methods are safe for
// concurrent use; writes are serialized through a single connection.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *zap.Logger
}

// Open initializes the database at path, creating the schema and parent
// directories as needed.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logger.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logger.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}

	s := &Store{db: db, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("history store opened", zap.String("path", path))
	return s, nil
}

func (s *Store) initialize() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS conversions (
			id         TEXT PRIMARY KEY,
			category   TEXT NOT NULL,
			from_unit  TEXT NOT NULL,
			to_unit    TEXT NOT NULL,
			input      REAL NOT NULL,
			result     REAL NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_conversions_created
			ON conversions(created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return nil
}

// Record appends a conversion and returns its generated id.
func (s *Store) Record(category, fromUnit, toUnit string, input, result float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO conversions (id, category, from_unit, to_unit, input, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, category, fromUnit, toUnit, input, result, time.Now().UTC(),
	)
	if err != nil {
		s.logger.Error("failed to record conversion", zap.Error(err))
		return "", fmt.Errorf("failed to record conversion: %w", err)
	}
	s.logger.Debug("conversion recorded",
		zap.String("id", id),
		zap.String("category", category),
		zap.String("from", fromUnit),
		zap.String("to", toUnit))
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, category, from_unit, to_unit, input, result, created_at
		 FROM conversions
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Category, &e.FromUnit, &e.ToUnit, &e.Input, &e.Result, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes the oldest rows beyond max. max <= 0 means unlimited.
func (s *Store) Prune(max int) error {
	if max <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`DELETE FROM conversions WHERE id NOT IN (
			SELECT id FROM conversions ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`, max)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		s.logger.Debug("pruned history entries", zap.Int64("count", n))
	}
	return nil
}

// Clear deletes all entries.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM conversions`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
