package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/signalscope/patterns"
	"github.com/rustyeddy/signalscope/signals"
)

func TestObserve(t *testing.T) {
	m := New()

	m.Observe(signals.TradingSignal{
		Direction: signals.Buy,
		Strength:  signals.Strong,
		Score:     72,
		Patterns: []patterns.Result{
			{NameEn: "Morning Star", Type: patterns.Bullish, Confidence: 0.75},
			{NameEn: "3 Consecutive Yang", Type: patterns.Bullish, Confidence: 0.65},
		},
	})
	m.Observe(signals.TradingSignal{Direction: signals.Hold, Strength: signals.Weak, Score: -5})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SignalsTotal.WithLabelValues("buy", "strong")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SignalsTotal.WithLabelValues("hold", "weak")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PatternsDetected.WithLabelValues("Morning Star")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.PatternsDetected))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SignalScore))

	expected := `
# HELP signalscope_signals_total Signals detected by direction and strength
# TYPE signalscope_signals_total counter
signalscope_signals_total{direction="buy",strength="strong"} 1
signalscope_signals_total{direction="hold",strength="weak"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "signalscope_signals_total"))
}

func TestCacheResultAndDuration(t *testing.T) {
	m := New()
	m.CacheResult(CacheHit)
	m.CacheResult(CacheMiss)
	m.CacheResult(CacheMiss)
	m.ObserveDuration(3 * time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheRequests.WithLabelValues(CacheHit)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheRequests.WithLabelValues(CacheMiss)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AnalyzeDuration))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Observe(signals.TradingSignal{Direction: signals.Sell, Strength: signals.Moderate, Score: -50})

	path := filepath.Join(t.TempDir(), "signalscope.prom")
	require.NoError(t, m.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `signalscope_signals_total{direction="sell",strength="moderate"} 1`)
	assert.Contains(t, string(b), "signalscope_signal_score_count 1")

	err = m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Error(t, err)
}

func TestSeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.CacheResult(CacheError)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CacheRequests.WithLabelValues(CacheError)))
}
