package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/signalscope/signals"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func sampleRecord(id, symbol string, asOf time.Time) SignalRecord {
	return SignalRecord{
		ID:        id,
		Symbol:    symbol,
		AsOf:      asOf,
		Direction: signals.Buy,
		Strength:  signals.Moderate,
		Score:     47.5,
		Reasons:   []string{"MACD golden cross", "KDJ oversold"},
		Patterns:  []string{"Morning Star"},
		CreatedAt: asOf.Add(16 * time.Hour),
	}
}
