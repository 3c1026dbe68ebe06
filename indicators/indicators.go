// Package indicators computes the technical indicator catalogue used for
// signal scoring: MACD, KDJ, moving-average alignment, volume ratio and
// support/resistance levels.
//
// Everything here is a pure function of the market.Series an Engine was
// built from. Short series never produce errors; windows shrink or the
// indicator reports a neutral default instead.
package indicators

import "encoding/json"

// Indicator computes a single streaming value from a sequence of inputs.
// It is deterministic and safe to replay.
type Indicator interface {
	// Name returns a stable identifier like "EMA(12)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears all internal state.
	Reset()

	// Update consumes the next input value.
	Update(x float64)

	// Ready reports whether Value() is meaningful (warmup completed).
	Ready() bool

	// Value returns the current indicator value.
	Value() float64
}

// Value is one point of a windowed indicator. OK is false when there were
// not enough inputs to fill the window.
type Value struct {
	V  float64
	OK bool
}

// MarshalJSON renders unavailable points as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.OK {
		return []byte("null"), nil
	}
	return json.Marshal(v.V)
}

// UnmarshalJSON accepts a number or null.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value{}
		return nil
	}
	if err := json.Unmarshal(b, &v.V); err != nil {
		return err
	}
	v.OK = true
	return nil
}

// crossed applies the two-bar sign-change rule to a fast-minus-slow spread.
func crossed(prev, cur float64) (golden, death bool) {
	golden = prev <= 0 && cur > 0
	death = prev >= 0 && cur < 0
	return golden, death
}

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
