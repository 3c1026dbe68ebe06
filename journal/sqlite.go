package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordSignal(r SignalRecord) error {
	reasons, err := json.Marshal(nonNil(r.Reasons))
	if err != nil {
		return err
	}
	pats, err := json.Marshal(nonNil(r.Patterns))
	if err != nil {
		return err
	}

	_, err = j.db.Exec(`
		INSERT INTO signals
		(signal_id, symbol, as_of, direction, strength, score, reasons, patterns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Symbol, r.AsOf.UTC(), r.Direction.String(), r.Strength.String(),
		r.Score, string(reasons), string(pats), r.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record signal %s: %w", r.ID, err)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
