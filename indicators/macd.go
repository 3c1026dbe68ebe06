package indicators

import "math"

// MACDResult holds the MACD lines aligned with the series plus the state
// flags of the latest bar.
type MACDResult struct {
	DIF       []float64
	DEA       []float64
	Histogram []float64

	IsAboveZero        bool
	IsGoldenCross      bool
	IsDeathCross       bool
	HistogramExpanding bool
}

// MACD computes DIF = EMA(fast) - EMA(slow), DEA = EMA(signal) of DIF and
// histogram = DIF - DEA over closes.
func (e *Engine) MACD() MACDResult {
	p := e.params
	fast := run(NewEMA(p.MACDFast), e.closes)
	slow := run(NewEMA(p.MACDSlow), e.closes)

	dif := make([]float64, len(e.closes))
	for i := range dif {
		dif[i] = fast[i] - slow[i]
	}
	dea := run(NewEMA(p.MACDSignal), dif)

	hist := make([]float64, len(dif))
	for i := range hist {
		hist[i] = dif[i] - dea[i]
	}

	r := MACDResult{DIF: dif, DEA: dea, Histogram: hist}
	n := len(dif)
	if n == 0 {
		return r
	}
	r.IsAboveZero = dif[n-1] > 0
	if n < 2 {
		return r
	}
	r.IsGoldenCross, r.IsDeathCross = crossed(dif[n-2]-dea[n-2], dif[n-1]-dea[n-1])
	r.HistogramExpanding = expanding(hist[n-2], hist[n-1])
	return r
}

// expanding reports whether cur grew in magnitude in the same direction as
// prev.
func expanding(prev, cur float64) bool {
	if prev > 0 && cur > 0 || prev < 0 && cur < 0 {
		return math.Abs(cur) > math.Abs(prev)
	}
	return false
}
