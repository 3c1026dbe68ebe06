package indicators

import (
	"fmt"

	"github.com/markcheno/go-talib"
)

// MAAlignment holds every configured simple moving average and whether
// their latest values are stacked bullishly or bearishly.
type MAAlignment struct {
	Values  map[int][]Value
	Bullish bool
	Bearish bool
}

// SMA returns the simple moving average of closes for period. Points with
// fewer than period closes behind them are not available.
func SMA(xs []float64, period int) ([]Value, error) {
	if period <= 0 {
		return nil, fmt.Errorf("period must be positive, got %d", period)
	}
	out := make([]Value, len(xs))
	if len(xs) < period {
		return out, nil
	}

	// talib indexes past the end when len < period, hence the guard above.
	sma := talib.Sma(xs, period)
	for i := period - 1; i < len(xs); i++ {
		out[i] = Value{V: sma[i], OK: true}
	}
	return out, nil
}

// SMA computes every configured moving average over closes.
func (e *Engine) SMA() map[int][]Value {
	out := make(map[int][]Value, len(e.params.MAPeriods))
	for _, p := range e.params.MAPeriods {
		// periods are normalized positive in New
		v, _ := SMA(e.closes, p)
		out[p] = v
	}
	return out
}

// MAAlignment evaluates the latest SMA values. Bullish means each shorter
// average is strictly above every longer one; bearish is the mirror. Both
// are false when fewer than two periods are configured or any latest value
// is unavailable.
func (e *Engine) MAAlignment() MAAlignment {
	values := e.SMA()
	r := MAAlignment{Values: values}

	periods := e.params.MAPeriods
	if len(periods) < 2 || len(e.closes) == 0 {
		return r
	}

	latest := make([]float64, len(periods))
	for i, p := range periods {
		v := values[p][len(e.closes)-1]
		if !v.OK {
			return r
		}
		latest[i] = v.V
	}

	// Periods ascend, so a strictly descending run of values is bullish.
	bull, bear := true, true
	for i := 1; i < len(latest); i++ {
		if !(latest[i-1] > latest[i]) {
			bull = false
		}
		if !(latest[i-1] < latest[i]) {
			bear = false
		}
	}
	r.Bullish, r.Bearish = bull, bear
	return r
}

// IsBullishAlignment is shorthand for MAAlignment().Bullish.
func (e *Engine) IsBullishAlignment() bool { return e.MAAlignment().Bullish }

// IsBearishAlignment is shorthand for MAAlignment().Bearish.
func (e *Engine) IsBearishAlignment() bool { return e.MAAlignment().Bearish }

// rollingMax returns the highest value of the trailing window ending at
// each index. The window shrinks at the head of the series.
func rollingMax(xs []float64, window int) []float64 {
	return rolling(xs, window, talib.Max, func(a, b float64) bool { return a > b })
}

// rollingMin is the mirror of rollingMax.
func rollingMin(xs []float64, window int) []float64 {
	return rolling(xs, window, talib.Min, func(a, b float64) bool { return a < b })
}

func rolling(xs []float64, window int, full func([]float64, int) []float64, better func(a, b float64) bool) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(xs))

	head := window - 1
	if head > len(xs) {
		head = len(xs)
	}
	for i := 0; i < head; i++ {
		best := xs[0]
		for j := 1; j <= i; j++ {
			if better(xs[j], best) {
				best = xs[j]
			}
		}
		out[i] = best
	}

	if len(xs) >= window {
		if window == 1 {
			copy(out, xs)
			return out
		}
		w := full(xs, window)
		copy(out[window-1:], w[window-1:])
	}
	return out
}
