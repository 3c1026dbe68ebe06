// Package journal persists detected signals to SQLite or CSV and renders
// them as Org-mode entries.
package journal

import (
	"time"

	"github.com/rustyeddy/signalscope/pkg/id"
	"github.com/rustyeddy/signalscope/signals"
)

// SignalRecord is one stored detection.
type SignalRecord struct {
	ID        string
	Symbol    string
	AsOf      time.Time // date of the bar that was scored
	Direction signals.Direction
	Strength  signals.Strength
	Score     float64
	Reasons   []string
	Patterns  []string // English pattern names
	CreatedAt time.Time
}

// Journal stores signal records.
type Journal interface {
	RecordSignal(SignalRecord) error
	Close() error
}

// FromSignal builds a record with a fresh ID.
func FromSignal(symbol string, asOf time.Time, sig signals.TradingSignal) SignalRecord {
	now := time.Now().UTC()
	pats := make([]string, len(sig.Patterns))
	for i, p := range sig.Patterns {
		pats[i] = p.NameEn
	}
	return SignalRecord{
		ID:        id.At(now),
		Symbol:    symbol,
		AsOf:      asOf,
		Direction: sig.Direction,
		Strength:  sig.Strength,
		Score:     sig.Score,
		Reasons:   append([]string{}, sig.Reasons...),
		Patterns:  pats,
		CreatedAt: now,
	}
}
