package indicators

import (
	"math"
	"sort"
)

// SupportResistance holds price levels below (supports) and above
// (resistances) the latest close. Both are sorted ascending.
type SupportResistance struct {
	Supports    []float64
	Resistances []float64
}

// SupportResistance finds pivot lows and highs, merges pivots that sit
// within LevelTolerance of each other and keeps the LevelMax levels closest
// to the latest close on each side.
func (e *Engine) SupportResistance() SupportResistance {
	r := SupportResistance{Supports: []float64{}, Resistances: []float64{}}
	n := len(e.closes)
	if n == 0 {
		return r
	}
	p := e.params
	price := e.closes[n-1]

	lows, highs := pivots(e.lows, e.highs, p.LevelWindow)

	var below, above []float64
	for _, v := range lows {
		if v < price {
			below = append(below, v)
		}
	}
	for _, v := range highs {
		if v > price {
			above = append(above, v)
		}
	}

	sup := cluster(below, p.LevelTolerance)
	res := cluster(above, p.LevelTolerance)

	if p.LevelMax > 0 {
		if len(sup) > p.LevelMax {
			sup = sup[len(sup)-p.LevelMax:]
		}
		if len(res) > p.LevelMax {
			res = res[:p.LevelMax]
		}
	}
	r.Supports = append(r.Supports, sup...)
	r.Resistances = append(r.Resistances, res...)
	return r
}

// pivots returns the lows and highs that are strict extremes of the
// symmetric window around them.
func pivots(lows, highs []float64, window int) (pl, ph []float64) {
	if window < 1 {
		window = 1
	}
	n := len(lows)
	for i := window; i < n-window; i++ {
		isLow, isHigh := true, true
		for j := i - window; j <= i+window; j++ {
			if j == i {
				continue
			}
			if lows[j] <= lows[i] {
				isLow = false
			}
			if highs[j] >= highs[i] {
				isHigh = false
			}
		}
		if isLow {
			pl = append(pl, lows[i])
		}
		if isHigh {
			ph = append(ph, highs[i])
		}
	}
	return pl, ph
}

// cluster sorts prices and merges each one into the running group when it
// is within tol of the group mean. It returns the group means ascending.
func cluster(prices []float64, tol float64) []float64 {
	if len(prices) == 0 {
		return nil
	}
	sorted := append([]float64(nil), prices...)
	sort.Float64s(sorted)

	var out []float64
	sum, count := sorted[0], 1
	for _, p := range sorted[1:] {
		mean := sum / float64(count)
		if near(p, mean, tol) {
			sum += p
			count++
			continue
		}
		out = append(out, mean)
		sum, count = p, 1
	}
	return append(out, sum/float64(count))
}

func near(p, mean, tol float64) bool {
	if mean == 0 {
		return p == 0
	}
	return math.Abs(p-mean)/math.Abs(mean) <= tol
}
