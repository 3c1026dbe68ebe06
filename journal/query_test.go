package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/signalscope/signals"
)

func TestGetSignal(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	asOf := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	want := sampleRecord("S123", "600519", asOf)
	want.Patterns = nil

	require.NoError(t, j.RecordSignal(want))

	got, err := j.GetSignal("S123")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Symbol, got.Symbol)
	assert.True(t, got.AsOf.Equal(want.AsOf))
	assert.Equal(t, signals.Buy, got.Direction)
	assert.Equal(t, signals.Moderate, got.Strength)
	assert.InDelta(t, want.Score, got.Score, 1e-9)
	assert.Equal(t, want.Reasons, got.Reasons)
	assert.Empty(t, got.Patterns)
	assert.True(t, got.CreatedAt.Equal(want.CreatedAt))
}

func TestGetSignalNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetSignal("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `signal "missing" not found`)
}

func TestListSignals(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	recs := []SignalRecord{
		sampleRecord("A1", "AAA", day),
		sampleRecord("B1", "BBB", day.AddDate(0, 0, 1)),
		sampleRecord("A2", "AAA", day.AddDate(0, 0, 2)),
		sampleRecord("A3", "AAA", day.AddDate(0, 0, 3)),
	}
	for _, r := range recs {
		require.NoError(t, j.RecordSignal(r))
	}

	all, err := j.ListSignals("", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "A3", all[0].ID, "newest first")

	aaa, err := j.ListSignals("AAA", 2)
	require.NoError(t, err)
	require.Len(t, aaa, 2)
	assert.Equal(t, "A3", aaa[0].ID)
	assert.Equal(t, "A2", aaa[1].ID)

	none, err := j.ListSignals("ZZZ", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListSignalsBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"D0", "D1", "D2", "D3"} {
		require.NoError(t, j.RecordSignal(sampleRecord(id, "AAA", day.AddDate(0, 0, i))))
	}

	got, err := j.ListSignalsBetween(day.AddDate(0, 0, 1), day.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "D1", got[0].ID)
	assert.Equal(t, "D2", got[1].ID)
}
