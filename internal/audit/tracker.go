package audit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lexicore/symspell/internal/debug"
)

// Tracker records every correction the engine applies, so a deployment can
// audit what was changed and when without re-running LookupCompound.
type Tracker struct {
	db *sql.DB
}

// NewTracker creates a new correction-log tracker over an existing
// connection.
func NewTracker(db *sql.DB) *Tracker {
	return &Tracker{db: db}
}

// CorrectionRecord is one CompoundLookup or Lookup call worth logging.
type CorrectionRecord struct {
	Original   string
	Corrected  string
	Distance   int
	Count      int64
	Verbosity  string
	CorrectedAt time.Time
	ClientID   string
}

// RecordCorrection persists a correction. Ensures the correction_log table
// exists before the first write, the same create-if-missing pattern the
// teacher uses for its own audit table.
func (t *Tracker) RecordCorrection(localDebug bool, rec CorrectionRecord) error {
	debug.DebugHeader(localDebug)
	defer debug.DebugFooter(localDebug)

	tx, err := t.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning correction log transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS correction_log (
			correction_id bigserial PRIMARY KEY,
			original      text NOT NULL,
			corrected     text NOT NULL,
			distance      integer NOT NULL,
			count         bigint NOT NULL,
			verbosity     text NOT NULL,
			client_id     text,
			corrected_at  timestamptz NOT NULL DEFAULT now()
		)
	`); err != nil {
		return fmt.Errorf("creating correction_log table: %w", err)
	}

	debug.DebugOutput(localDebug, "recording correction %q -> %q (distance %d)", rec.Original, rec.Corrected, rec.Distance)

	if _, err := tx.Exec(`
		INSERT INTO correction_log (original, corrected, distance, count, verbosity, client_id, corrected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.Original, rec.Corrected, rec.Distance, rec.Count, rec.Verbosity, rec.ClientID, rec.CorrectedAt); err != nil {
		return fmt.Errorf("inserting correction_log row: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing correction log transaction: %w", err)
	}

	debug.DebugOutput(localDebug, "recorded correction for %q", rec.Original)
	return nil
}

// History is one row read back from correction_log.
type History struct {
	CorrectionID int64     `json:"correction_id"`
	Original     string    `json:"original"`
	Corrected    string    `json:"corrected"`
	Distance     int       `json:"distance"`
	Count        int64     `json:"count"`
	Verbosity    string    `json:"verbosity"`
	ClientID     string    `json:"client_id"`
	CorrectedAt  time.Time `json:"corrected_at"`
}

// RecentCorrections returns the most recent corrections logged, newest
// first, capped at limit rows.
func (t *Tracker) RecentCorrections(localDebug bool, limit int) ([]History, error) {
	debug.DebugHeader(localDebug)
	defer debug.DebugFooter(localDebug)

	rows, err := t.db.Query(`
		SELECT correction_id, original, corrected, distance, count, verbosity,
			COALESCE(client_id, ''), corrected_at
		FROM correction_log
		ORDER BY corrected_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying correction history: %w", err)
	}
	defer rows.Close()

	var history []History
	for rows.Next() {
		var h History
		if err := rows.Scan(&h.CorrectionID, &h.Original, &h.Corrected, &h.Distance, &h.Count, &h.Verbosity, &h.ClientID, &h.CorrectedAt); err != nil {
			debug.DebugOutput(localDebug, "error scanning correction_log row: %v", err)
			continue
		}
		history = append(history, h)
	}

	debug.DebugOutput(localDebug, "retrieved %d correction history rows", len(history))
	return history, rows.Err()
}
