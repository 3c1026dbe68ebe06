package market

import (
	"errors"
	"fmt"
)

var (
	// ErrUnordered is returned when bar dates are not strictly increasing.
	ErrUnordered = errors.New("bars not in ascending date order")

	// ErrMissingColumns is wrapped by ColumnError.
	ErrMissingColumns = errors.New("missing required columns")
)

// Series is an immutable, ordered sequence of bars. Index 0 is the oldest
// bar. A Series owns a private copy of its bars; nothing handed to or
// returned from it aliases the backing slice.
type Series struct {
	bars      []Bar
	hasVolume bool
}

// NewSeries copies bars into a new Series. Bars with a zero Date are not
// checked for ordering; the series is never re-sorted.
func NewSeries(bars []Bar) (Series, error) {
	for i := 1; i < len(bars); i++ {
		prev, cur := bars[i-1].Date, bars[i].Date
		if prev.IsZero() || cur.IsZero() {
			continue
		}
		if !cur.After(prev) {
			return Series{}, fmt.Errorf("bar %d (%s) after %s: %w",
				i, cur.Format(dateLayout), prev.Format(dateLayout), ErrUnordered)
		}
	}

	cp := make([]Bar, len(bars))
	copy(cp, bars)
	return Series{bars: cp, hasVolume: true}, nil
}

// MustSeries is NewSeries that panics on error. Intended for tests and
// literal fixtures.
func MustSeries(bars []Bar) Series {
	s, err := NewSeries(bars)
	if err != nil {
		panic(err)
	}
	return s
}

// WithoutVolume returns a copy of the series flagged as having no volume
// column.
func (s Series) WithoutVolume() Series {
	s.hasVolume = false
	return s
}

// HasVolume reports whether volume data was supplied.
func (s Series) HasVolume() bool { return s.hasVolume }

// Len returns the number of bars.
func (s Series) Len() int { return len(s.bars) }

// At returns the bar at position i. It panics when i is out of range, like
// a slice index.
func (s Series) At(i int) Bar { return s.bars[i] }

// Last returns the most recent bar and false when the series is empty.
func (s Series) Last() (Bar, bool) {
	if len(s.bars) == 0 {
		return Bar{}, false
	}
	return s.bars[len(s.bars)-1], true
}

// Resolve maps idx to a non-negative position. Negative values count back
// from the end, so -1 is the last bar. The bool is false when the resolved
// position falls outside the series.
func (s Series) Resolve(idx int) (int, bool) {
	if idx < 0 {
		idx += len(s.bars)
	}
	if idx < 0 || idx >= len(s.bars) {
		return 0, false
	}
	return idx, true
}

// Bars returns a copy of the underlying bars.
func (s Series) Bars() []Bar {
	cp := make([]Bar, len(s.bars))
	copy(cp, s.bars)
	return cp
}

// Opens returns the open prices.
func (s Series) Opens() []float64 {
	return s.column(func(b Bar) float64 { return b.Open })
}

// Highs returns the high prices.
func (s Series) Highs() []float64 {
	return s.column(func(b Bar) float64 { return b.High })
}

// Lows returns the low prices.
func (s Series) Lows() []float64 {
	return s.column(func(b Bar) float64 { return b.Low })
}

// Closes returns the closing prices.
func (s Series) Closes() []float64 {
	return s.column(func(b Bar) float64 { return b.Close })
}

// Volumes returns volumes as float64 for averaging.
func (s Series) Volumes() []float64 {
	return s.column(func(b Bar) float64 { return float64(b.Volume) })
}

func (s Series) column(f func(Bar) float64) []float64 {
	out := make([]float64, len(s.bars))
	for i, b := range s.bars {
		out[i] = f(b)
	}
	return out
}
