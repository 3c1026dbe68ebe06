package indicators

// KDJResult holds the K, D and J lines and the state of the latest bar.
type KDJResult struct {
	K []float64
	D []float64
	J []float64

	IsGoldenCross bool
	IsDeathCross  bool
	IsOverbought  bool
	IsOversold    bool
}

// KDJ computes the stochastic KDJ(9,3,3) lines.
//
//	RSV = (close - lowest low) / (highest high - lowest low) * 100
//	K   = 2/3 K' + 1/3 RSV
//	D   = 2/3 D' + 1/3 K
//	J   = 3K - 2D
//
// The high/low window shrinks over the first bars of the series. A window
// with zero range uses Params.KDJFlat as its RSV.
func (e *Engine) KDJ() KDJResult {
	p := e.params
	n := len(e.closes)

	hh := rollingMax(e.highs, p.KDJWindow)
	ll := rollingMin(e.lows, p.KDJWindow)

	kLine := NewSmoothed(p.KDJSmooth, 1, p.KDJSeed)
	dLine := NewSmoothed(p.KDJSmooth, 1, p.KDJSeed)

	r := KDJResult{
		K: make([]float64, n),
		D: make([]float64, n),
		J: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		rsv := p.KDJFlat
		if rng := hh[i] - ll[i]; rng > 0 {
			rsv = (e.closes[i] - ll[i]) / rng * 100
		}
		kLine.Update(rsv)
		dLine.Update(kLine.Value())

		r.K[i] = kLine.Value()
		r.D[i] = dLine.Value()
		r.J[i] = 3*r.K[i] - 2*r.D[i]
	}

	if n == 0 {
		return r
	}
	k, d := r.K[n-1], r.D[n-1]
	r.IsOverbought = k > p.Overbought && d > p.Overbought
	r.IsOversold = k < p.Oversold && d < p.Oversold
	if n >= 2 {
		r.IsGoldenCross, r.IsDeathCross = crossed(r.K[n-2]-r.D[n-2], k-d)
	}
	return r
}
