package journal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/signalscope/signals"
)

const selectSignals = `
	SELECT signal_id, symbol, as_of, direction, strength, score, reasons, patterns, created_at
	FROM signals`

type scanner interface {
	Scan(dest ...any) error
}

func scanSignal(s scanner) (SignalRecord, error) {
	var (
		rec                 SignalRecord
		dir, str            string
		reasons, patternsJS string
	)
	err := s.Scan(
		&rec.ID,
		&rec.Symbol,
		&rec.AsOf,
		&dir,
		&str,
		&rec.Score,
		&reasons,
		&patternsJS,
		&rec.CreatedAt,
	)
	if err != nil {
		return SignalRecord{}, err
	}
	if rec.Direction, err = signals.ParseDirection(dir); err != nil {
		return SignalRecord{}, err
	}
	if rec.Strength, err = signals.ParseStrength(str); err != nil {
		return SignalRecord{}, err
	}
	if err := json.Unmarshal([]byte(reasons), &rec.Reasons); err != nil {
		return SignalRecord{}, fmt.Errorf("signal %s reasons: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(patternsJS), &rec.Patterns); err != nil {
		return SignalRecord{}, fmt.Errorf("signal %s patterns: %w", rec.ID, err)
	}
	return rec, nil
}

// GetSignal returns a single signal record by ID.
func (j *SQLite) GetSignal(signalID string) (SignalRecord, error) {
	row := j.db.QueryRow(selectSignals+` WHERE signal_id = ?`, signalID)

	rec, err := scanSignal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SignalRecord{}, fmt.Errorf("signal %q not found", signalID)
		}
		return SignalRecord{}, err
	}
	return rec, nil
}

// ListSignals returns the newest records first. An empty symbol matches
// every symbol; limit <= 0 means no limit.
func (j *SQLite) ListSignals(symbol string, limit int) ([]SignalRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(selectSignals+`
		WHERE (? = '' OR symbol = ?)
		ORDER BY created_at DESC, signal_id DESC
		LIMIT ?`, symbol, symbol, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// ListSignalsBetween returns records whose as_of is within [start, end).
func (j *SQLite) ListSignalsBetween(start, end time.Time) ([]SignalRecord, error) {
	rows, err := j.db.Query(selectSignals+`
		WHERE as_of >= ? AND as_of < ?
		ORDER BY as_of ASC, signal_id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows *sql.Rows) ([]SignalRecord, error) {
	defer rows.Close()

	var out []SignalRecord
	for rows.Next() {
		rec, err := scanSignal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
