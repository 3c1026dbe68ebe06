package indicators

import "fmt"

// EMA is a streaming exponential moving average with smoothing constant
// 2/(n+1). It is seeded with the first input, so every output point is
// defined.
type EMA struct {
	n     int
	alpha float64

	seen  int
	value float64

	name string
}

// NewEMA creates an EMA over period n.
func NewEMA(period int) *EMA {
	if period <= 0 {
		panic("EMA period must be > 0")
	}
	return &EMA{
		n:     period,
		alpha: 2.0 / float64(period+1),
		name:  fmt.Sprintf("EMA(%d)", period),
	}
}

func (e *EMA) Name() string   { return e.name }
func (e *EMA) Warmup() int    { return e.n }
func (e *EMA) Ready() bool    { return e.seen >= e.n }
func (e *EMA) Value() float64 { return e.value }

func (e *EMA) Reset() {
	e.seen = 0
	e.value = 0
}

func (e *EMA) Update(x float64) {
	e.seen++
	if e.seen == 1 {
		e.value = x
		return
	}
	e.value = e.alpha*x + (1.0-e.alpha)*e.value
}

// Smoothed is the weighted recurrence y = (m*x + (n-m)*y') / n used by the
// KDJ lines. Unlike EMA it starts from a fixed seed rather than the first
// input.
type Smoothed struct {
	n, m  int
	seed  float64
	value float64
	seen  int
}

// NewSmoothed creates a Smoothed recurrence with weight m/n starting at seed.
func NewSmoothed(n, m int, seed float64) *Smoothed {
	if n <= 0 || m <= 0 || m > n {
		panic(fmt.Sprintf("invalid smoothing weights %d/%d", m, n))
	}
	return &Smoothed{n: n, m: m, seed: seed, value: seed}
}

func (s *Smoothed) Name() string   { return fmt.Sprintf("SMA(%d,%d)", s.n, s.m) }
func (s *Smoothed) Warmup() int    { return 1 }
func (s *Smoothed) Ready() bool    { return s.seen > 0 }
func (s *Smoothed) Value() float64 { return s.value }

func (s *Smoothed) Reset() {
	s.value = s.seed
	s.seen = 0
}

func (s *Smoothed) Update(x float64) {
	s.seen++
	w := float64(s.m) / float64(s.n)
	s.value = s.value*(1-w) + x*w
}

// run feeds xs through ind and returns the value after every update.
func run(ind Indicator, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		ind.Update(x)
		out[i] = ind.Value()
	}
	return out
}
