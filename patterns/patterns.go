// Package patterns recognizes fixed-shape candlestick patterns ending at a
// position in a bar series.
//
// Checks only look back a few bars from the evaluation position and never
// fail: insufficient history simply means no match.
package patterns

import (
	"fmt"

	"github.com/rustyeddy/signalscope/market"
)

// Type is the directional bias of a pattern.
type Type int

const (
	Neutral Type = iota
	Bullish
	Bearish
)

func (t Type) String() string {
	switch t {
	case Bullish:
		return "bullish"
	case Bearish:
		return "bearish"
	case Neutral:
		return "neutral"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case Bullish, Bearish, Neutral:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("invalid pattern type %d", int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	switch string(b) {
	case "bullish":
		*t = Bullish
	case "bearish":
		*t = Bearish
	case "neutral":
		*t = Neutral
	default:
		return fmt.Errorf("unknown pattern type %q", b)
	}
	return nil
}

// Result describes one recognized pattern.
type Result struct {
	Name        string  `json:"name"`
	NameEn      string  `json:"name_en"`
	Type        Type    `json:"type"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
	Position    int     `json:"position"`
}

// DefaultAvgLookback is the window AvgBody uses inside the checkers.
const DefaultAvgLookback = 10

// DefaultDojiThreshold is the body/range ratio below which a bar is a doji.
const DefaultDojiThreshold = 0.1

// Recognizer runs pattern checks over one immutable series.
type Recognizer struct {
	s market.Series
}

// New creates a Recognizer. Only open/high/low/close are used.
func New(s market.Series) *Recognizer {
	return &Recognizer{s: s}
}

// Len returns the number of bars.
func (r *Recognizer) Len() int { return r.s.Len() }

// Body is |close - open| of bar i.
func (r *Recognizer) Body(i int) float64 { return r.s.At(i).Body() }

// IsBullish reports close > open for bar i.
func (r *Recognizer) IsBullish(i int) bool { return r.s.At(i).Bullish() }

// IsBearish reports close < open for bar i.
func (r *Recognizer) IsBearish(i int) bool { return r.s.At(i).Bearish() }

// IsDoji reports whether the body of bar i is under threshold of its range.
// A bar with no range counts as a doji.
func (r *Recognizer) IsDoji(i int, threshold float64) bool {
	b := r.s.At(i)
	rng := b.Range()
	if rng == 0 {
		return true
	}
	return b.Body()/rng < threshold
}

// AvgBody is the mean body of the lookback bars ending at idx. The window
// shrinks when fewer bars are available.
func (r *Recognizer) AvgBody(idx, lookback int) float64 {
	pos, ok := r.s.Resolve(idx)
	if !ok || lookback <= 0 {
		return 0
	}
	start := pos - lookback + 1
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for i := start; i <= pos; i++ {
		sum += r.Body(i)
	}
	return sum / float64(pos-start+1)
}

// window resolves idx and checks that need-1 earlier bars exist.
func (r *Recognizer) window(idx, need int) (int, bool) {
	pos, ok := r.s.Resolve(idx)
	if !ok || pos < need-1 {
		return 0, false
	}
	return pos, true
}

// ToMap returns the flat projection of r keyed like its JSON form.
func (r Result) ToMap() map[string]any {
	return map[string]any{
		"name":        r.Name,
		"name_en":     r.NameEn,
		"type":        r.Type.String(),
		"confidence":  r.Confidence,
		"description": r.Description,
		"position":    r.Position,
	}
}
