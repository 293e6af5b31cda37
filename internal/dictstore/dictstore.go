// Package dictstore loads a symspell frequency dictionary from Postgres.
// It only ever produces (term, count) pairs to feed into
// symspell.SymSpell.CreateDictionaryEntry — the DeleteIndex is always
// rebuilt in-process from those pairs, never persisted itself.
package dictstore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/lexicore/symspell/internal/config"
	"github.com/lexicore/symspell/internal/symspell"
)

// Store wraps a Postgres connection holding a term_frequency table.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres using PGHOST/PGPORT/PGUSER/PGPASSWORD/PGDATABASE
// (falling back to the teacher's defaults when unset) and verifies the
// connection with a Ping.
func Open() (*Store, error) {
	host := config.GetEnv("PGHOST", "localhost")
	port := config.GetEnv("PGPORT", "5432")
	user := config.GetEnv("PGUSER", "symspell")
	password := config.GetEnv("PGPASSWORD", "")
	dbname := config.GetEnv("PGDATABASE", "symspell")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging dictionary store: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return &Store{db: db}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection so other Postgres-backed
// collaborators (internal/audit) can share the pool instead of opening
// their own.
func (s *Store) DB() *sql.DB {
	return s.db
}

// EnsureSchema creates the term_frequency table if it does not already
// exist.
func (s *Store) EnsureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS term_frequency (
			term  text PRIMARY KEY,
			count bigint NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("creating term_frequency table: %w", err)
	}
	return nil
}

// Upsert inserts or accumulates a (term, count) pair, for callers building
// the dictionary from a corpus incrementally.
func (s *Store) Upsert(term string, count int64) error {
	_, err := s.db.Exec(`
		INSERT INTO term_frequency (term, count) VALUES ($1, $2)
		ON CONFLICT (term) DO UPDATE SET count = term_frequency.count + EXCLUDED.count
	`, term, count)
	if err != nil {
		return fmt.Errorf("upserting term %q: %w", term, err)
	}
	return nil
}

// LoadInto streams every (term, count) row in term_frequency into engine
// via CreateDictionaryEntry. This is the only path from Postgres back into
// a live SymSpell: the engine rebuilds its DeleteIndex from these calls,
// the stored table never represents delete variants itself.
func (s *Store) LoadInto(engine *symspell.SymSpell) (int, error) {
	rows, err := s.db.Query(`SELECT term, count FROM term_frequency`)
	if err != nil {
		return 0, fmt.Errorf("querying term_frequency: %w", err)
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		var term string
		var count int64
		if err := rows.Scan(&term, &count); err != nil {
			return loaded, fmt.Errorf("scanning term_frequency row: %w", err)
		}
		if engine.CreateDictionaryEntry(term, count) {
			loaded++
		}
	}
	return loaded, rows.Err()
}
