package indicators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rustyeddy/signalscope/market"
)

// ErrNoVolume is returned by New when the series carries no volume column.
var ErrNoVolume = errors.New("indicators: series has no volume column")

// Params holds every tunable window and threshold of the engine.
type Params struct {
	MACDFast   int
	MACDSlow   int
	MACDSignal int

	KDJWindow int
	KDJSmooth int     // K and D use weight 1/KDJSmooth
	KDJSeed   float64 // starting value of K and D
	KDJFlat   float64 // RSV used when the window has zero range

	Overbought float64
	Oversold   float64

	MAPeriods []int

	VolumeLookback int

	LevelWindow    int     // pivot lookback/lookahead in bars
	LevelTolerance float64 // relative distance for merging pivots
	LevelMax       int     // levels kept on each side of the close
}

// DefaultParams returns MACD(12,26,9), KDJ(9,3,3) seeded at 50, MA
// 5/10/20/60, a 10 bar volume lookback and ±3 bar pivots clustered at 1.5%.
func DefaultParams() Params {
	return Params{
		MACDFast:       12,
		MACDSlow:       26,
		MACDSignal:     9,
		KDJWindow:      9,
		KDJSmooth:      3,
		KDJSeed:        50,
		KDJFlat:        50,
		Overbought:     80,
		Oversold:       20,
		MAPeriods:      []int{5, 10, 20, 60},
		VolumeLookback: 10,
		LevelWindow:    3,
		LevelTolerance: 0.015,
		LevelMax:       3,
	}
}

// Option customizes Params.
type Option func(*Params)

// WithParams replaces all parameters.
func WithParams(p Params) Option {
	return func(dst *Params) { *dst = p }
}

// WithMAPeriods sets the moving average periods.
func WithMAPeriods(periods ...int) Option {
	return func(p *Params) { p.MAPeriods = append([]int(nil), periods...) }
}

// WithVolumeLookback sets how many prior bars the volume ratio averages.
func WithVolumeLookback(n int) Option {
	return func(p *Params) { p.VolumeLookback = n }
}

// WithKDJ sets the K/D seed and the RSV used for zero-range windows.
func WithKDJ(seed, flat float64) Option {
	return func(p *Params) {
		p.KDJSeed = seed
		p.KDJFlat = flat
	}
}

// WithLevels sets the pivot window, cluster tolerance and number of levels.
func WithLevels(window int, tolerance float64, max int) Option {
	return func(p *Params) {
		p.LevelWindow = window
		p.LevelTolerance = tolerance
		p.LevelMax = max
	}
}

// Engine computes indicators over one immutable series.
type Engine struct {
	series market.Series
	params Params

	closes []float64
	highs  []float64
	lows   []float64
	vols   []float64
}

// New creates an Engine. The series must carry volume.
func New(s market.Series, opts ...Option) (*Engine, error) {
	if !s.HasVolume() {
		return nil, ErrNoVolume
	}

	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	p.MAPeriods = normalizePeriods(p.MAPeriods)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		series: s,
		params: p,
		closes: s.Closes(),
		highs:  s.Highs(),
		lows:   s.Lows(),
		vols:   s.Volumes(),
	}, nil
}

// Validate reports the first parameter that would make a computation
// meaningless.
func (p Params) Validate() error {
	switch {
	case p.MACDFast <= 0 || p.MACDSignal <= 0:
		return fmt.Errorf("macd periods must be positive")
	case p.MACDSlow <= p.MACDFast:
		return fmt.Errorf("macd slow period must be greater than fast period")
	case p.KDJWindow <= 0:
		return fmt.Errorf("kdj window must be positive")
	case p.KDJSmooth <= 0:
		return fmt.Errorf("kdj smoothing must be positive")
	case p.Oversold < 0 || p.Overbought > 100 || p.Oversold >= p.Overbought:
		return fmt.Errorf("kdj oversold must be below overbought within [0, 100]")
	case p.VolumeLookback <= 0:
		return fmt.Errorf("volume lookback must be positive")
	case p.LevelWindow <= 0 || p.LevelMax <= 0:
		return fmt.Errorf("level window and max must be positive")
	case p.LevelTolerance < 0:
		return fmt.Errorf("level tolerance must not be negative")
	}
	return nil
}

// Params returns the effective parameters.
func (e *Engine) Params() Params {
	p := e.params
	p.MAPeriods = append([]int(nil), p.MAPeriods...)
	return p
}

// Len returns the number of bars in the underlying series.
func (e *Engine) Len() int { return len(e.closes) }

// normalizePeriods sorts ascending and drops duplicates and non-positive
// periods.
func normalizePeriods(in []int) []int {
	out := make([]int, 0, len(in))
	seen := make(map[int]bool, len(in))
	for _, p := range in {
		if p <= 0 || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
