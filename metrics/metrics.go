// Package metrics counts detected signals for Prometheus scraping or the
// node_exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rustyeddy/signalscope/signals"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics holds every collector on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	SignalsTotal     *prometheus.CounterVec // labels: direction, strength
	SignalScore      prometheus.Histogram
	PatternsDetected *prometheus.CounterVec // labels: pattern
	CacheRequests    *prometheus.CounterVec // labels: result
	AnalyzeDuration  prometheus.Histogram
}

// New registers and returns all collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		SignalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signalscope_signals_total",
			Help: "Signals detected by direction and strength",
		}, []string{"direction", "strength"}),
		SignalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "signalscope_signal_score",
			Help:    "Composite score of detected signals",
			Buckets: prometheus.LinearBuckets(-90, 15, 13),
		}),
		PatternsDetected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signalscope_patterns_detected_total",
			Help: "Candlestick patterns found at the scored bar",
		}, []string{"pattern"}),
		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signalscope_cache_requests_total",
			Help: "Signal cache lookups by result",
		}, []string{"result"}),
		AnalyzeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "signalscope_analyze_duration_seconds",
			Help:    "Time spent computing one signal",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}
	m.reg.MustRegister(
		m.SignalsTotal,
		m.SignalScore,
		m.PatternsDetected,
		m.CacheRequests,
		m.AnalyzeDuration,
	)
	return m
}

// Registry exposes the registry for handlers and tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Observe records one detected signal.
func (m *Metrics) Observe(sig signals.TradingSignal) {
	m.SignalsTotal.WithLabelValues(sig.Direction.String(), sig.Strength.String()).Inc()
	m.SignalScore.Observe(sig.Score)
	for _, p := range sig.Patterns {
		m.PatternsDetected.WithLabelValues(p.NameEn).Inc()
	}
}

// CacheResult counts one cache lookup.
func (m *Metrics) CacheResult(result string) {
	m.CacheRequests.WithLabelValues(result).Inc()
}

// ObserveDuration records the time one detection took.
func (m *Metrics) ObserveDuration(d time.Duration) {
	m.AnalyzeDuration.Observe(d.Seconds())
}

// WriteTextfile writes the registry in text exposition format, replacing
// path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
