package indicators

import (
	"time"

	"github.com/rustyeddy/signalscope/market"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// barsFromCloses builds bars whose open/high/low hug the close.
func barsFromCloses(closes ...float64) []market.Bar {
	bars := make([]market.Bar, len(closes))
	for i, c := range closes {
		bars[i] = market.Bar{
			Date:   t0.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func linear(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func engineFor(bars []market.Bar, opts ...Option) *Engine {
	e, err := New(market.MustSeries(bars), opts...)
	if err != nil {
		panic(err)
	}
	return e
}
