package signals

import (
	"github.com/rs/zerolog"

	"github.com/rustyeddy/signalscope/indicators"
	"github.com/rustyeddy/signalscope/market"
	"github.com/rustyeddy/signalscope/patterns"
)

// Detector owns one indicator engine and one pattern recognizer over the
// same series.
type Detector struct {
	engine     *indicators.Engine
	recognizer *patterns.Recognizer
	log        zerolog.Logger
}

type settings struct {
	indicators []indicators.Option
	log        zerolog.Logger
}

// Option configures a Detector.
type Option func(*settings)

// WithIndicators passes options through to the indicator engine.
func WithIndicators(opts ...indicators.Option) Option {
	return func(s *settings) { s.indicators = append(s.indicators, opts...) }
}

// WithLogger traces every score contribution at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// New builds a Detector. It fails with indicators.ErrNoVolume when the
// series has no volume column.
func New(s market.Series, opts ...Option) (*Detector, error) {
	cfg := settings{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	eng, err := indicators.New(s, cfg.indicators...)
	if err != nil {
		return nil, err
	}
	return &Detector{
		engine:     eng,
		recognizer: patterns.New(s),
		log:        cfg.log,
	}, nil
}

// Engine exposes the underlying indicator engine.
func (d *Detector) Engine() *indicators.Engine { return d.engine }

// Recognizer exposes the underlying pattern recognizer.
func (d *Detector) Recognizer() *patterns.Recognizer { return d.recognizer }

// Detect scores the latest bar.
func (d *Detector) Detect() TradingSignal {
	sig := score(d.engine.Summary(), d.recognizer.ScanAll(-1), d.log)
	d.log.Debug().
		Stringer("direction", sig.Direction).
		Stringer("strength", sig.Strength).
		Float64("score", sig.Score).
		Int("patterns", len(sig.Patterns)).
		Msg("signal detected")
	return sig
}

// Resonance reports the majority vote of the MACD, KDJ and MA families.
// It is independent of Detect's score.
func (d *Detector) Resonance() ResonanceStatus {
	return ResonanceOf(indicators.Summary{
		MACD: d.engine.MACD().Snapshot(),
		KDJ:  d.engine.KDJ().Snapshot(),
		MA:   d.engine.MAAlignment().Snapshot(),
	})
}
