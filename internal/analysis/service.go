// Package analysis runs one detection end to end: cache lookup, scoring,
// cache store, journaling and metrics.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/signalscope/cache"
	"github.com/rustyeddy/signalscope/indicators"
	"github.com/rustyeddy/signalscope/journal"
	"github.com/rustyeddy/signalscope/market"
	"github.com/rustyeddy/signalscope/metrics"
	"github.com/rustyeddy/signalscope/signals"
)

// Service wires the optional collaborators around a Detector. Nil Cache,
// Journal and Metrics are skipped.
type Service struct {
	Cache       cache.Cache
	Journal     journal.Journal
	Metrics     *metrics.Metrics
	Options     []indicators.Option
	Fingerprint string // identifies Options in cache keys
	Log         zerolog.Logger
}

// Outcome is what one Analyze call produced.
type Outcome struct {
	Symbol    string                  `json:"symbol"`
	AsOf      time.Time               `json:"as_of"`
	Signal    signals.TradingSignal   `json:"signal"`
	Resonance signals.ResonanceStatus `json:"resonance"`
	Cached    bool                    `json:"cached"`
	RecordID  string                  `json:"record_id,omitempty"`
}

// Analyze scores the latest bar of s. Cache failures degrade to a miss;
// journal failures are returned.
func (svc *Service) Analyze(ctx context.Context, symbol string, s market.Series) (Outcome, error) {
	last, ok := s.Last()
	if !ok {
		return Outcome{}, fmt.Errorf("analyze %s: empty series", symbol)
	}
	log := svc.Log.With().Str("symbol", symbol).Logger()
	out := Outcome{Symbol: symbol, AsOf: last.Date}

	key := ""
	if svc.Cache != nil {
		key = cache.Key(s, svc.Fingerprint)
		sig, hit, err := svc.Cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("signal cache unavailable")
			svc.cacheResult(metrics.CacheError)
		case hit:
			svc.cacheResult(metrics.CacheHit)
			out.Signal, out.Cached = sig, true
		default:
			svc.cacheResult(metrics.CacheMiss)
		}
	}

	if !out.Cached {
		start := time.Now()
		det, err := signals.New(s, signals.WithIndicators(svc.Options...), signals.WithLogger(log))
		if err != nil {
			return Outcome{}, fmt.Errorf("analyze %s: %w", symbol, err)
		}
		out.Signal = det.Detect()
		if svc.Metrics != nil {
			svc.Metrics.ObserveDuration(time.Since(start))
		}
		if svc.Cache != nil {
			if err := svc.Cache.Set(ctx, key, out.Signal); err != nil {
				log.Warn().Err(err).Msg("signal cache store failed")
			}
		}
	}
	out.Resonance = signals.ResonanceOf(out.Signal.Indicators)

	if svc.Journal != nil {
		rec := journal.FromSignal(symbol, out.AsOf, out.Signal)
		if err := svc.Journal.RecordSignal(rec); err != nil {
			return out, fmt.Errorf("journal %s: %w", symbol, err)
		}
		out.RecordID = rec.ID
	}
	if svc.Metrics != nil {
		svc.Metrics.Observe(out.Signal)
	}

	log.Info().
		Stringer("direction", out.Signal.Direction).
		Stringer("strength", out.Signal.Strength).
		Float64("score", out.Signal.Score).
		Bool("cached", out.Cached).
		Msg("signal")
	return out, nil
}

func (svc *Service) cacheResult(result string) {
	if svc.Metrics != nil {
		svc.Metrics.CacheResult(result)
	}
}
