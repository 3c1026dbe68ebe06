package indicators

// MACDSnapshot is the latest-bar projection of MACDResult.
type MACDSnapshot struct {
	DIF                float64 `json:"dif" yaml:"dif"`
	DEA                float64 `json:"dea" yaml:"dea"`
	Histogram          float64 `json:"histogram" yaml:"histogram"`
	GoldenCross        bool    `json:"golden_cross" yaml:"golden_cross"`
	DeathCross         bool    `json:"death_cross" yaml:"death_cross"`
	AboveZero          bool    `json:"above_zero" yaml:"above_zero"`
	HistogramExpanding bool    `json:"histogram_expanding" yaml:"histogram_expanding"`
}

// KDJSnapshot is the latest-bar projection of KDJResult.
type KDJSnapshot struct {
	K           float64 `json:"k" yaml:"k"`
	D           float64 `json:"d" yaml:"d"`
	J           float64 `json:"j" yaml:"j"`
	GoldenCross bool    `json:"golden_cross" yaml:"golden_cross"`
	DeathCross  bool    `json:"death_cross" yaml:"death_cross"`
	Overbought  bool    `json:"overbought" yaml:"overbought"`
	Oversold    bool    `json:"oversold" yaml:"oversold"`
}

// MASnapshot carries the alignment flags and latest value per period.
type MASnapshot struct {
	Bullish bool          `json:"bullish" yaml:"bullish"`
	Bearish bool          `json:"bearish" yaml:"bearish"`
	Values  map[int]Value `json:"values,omitempty" yaml:"-"`
}

// VolumeSnapshot carries the volume ratio.
type VolumeSnapshot struct {
	Ratio float64 `json:"ratio" yaml:"ratio"`
}

// LevelsSnapshot carries support and resistance levels.
type LevelsSnapshot struct {
	Supports    []float64 `json:"supports" yaml:"supports"`
	Resistances []float64 `json:"resistances" yaml:"resistances"`
}

// Summary bundles the latest state of every indicator family.
type Summary struct {
	MACD   MACDSnapshot   `json:"macd" yaml:"macd"`
	KDJ    KDJSnapshot    `json:"kdj" yaml:"kdj"`
	MA     MASnapshot     `json:"ma_alignment" yaml:"ma_alignment"`
	Volume VolumeSnapshot `json:"volume" yaml:"volume"`
	Levels LevelsSnapshot `json:"levels" yaml:"levels"`
}

// Snapshot projects the latest values.
func (m MACDResult) Snapshot() MACDSnapshot {
	return MACDSnapshot{
		DIF:                last(m.DIF),
		DEA:                last(m.DEA),
		Histogram:          last(m.Histogram),
		GoldenCross:        m.IsGoldenCross,
		DeathCross:         m.IsDeathCross,
		AboveZero:          m.IsAboveZero,
		HistogramExpanding: m.HistogramExpanding,
	}
}

// Snapshot projects the latest values.
func (k KDJResult) Snapshot() KDJSnapshot {
	return KDJSnapshot{
		K:           last(k.K),
		D:           last(k.D),
		J:           last(k.J),
		GoldenCross: k.IsGoldenCross,
		DeathCross:  k.IsDeathCross,
		Overbought:  k.IsOverbought,
		Oversold:    k.IsOversold,
	}
}

// Snapshot projects the latest value of each average.
func (a MAAlignment) Snapshot() MASnapshot {
	s := MASnapshot{Bullish: a.Bullish, Bearish: a.Bearish}
	if len(a.Values) > 0 {
		s.Values = make(map[int]Value, len(a.Values))
		for p, vs := range a.Values {
			if len(vs) > 0 {
				s.Values[p] = vs[len(vs)-1]
			} else {
				s.Values[p] = Value{}
			}
		}
	}
	return s
}

// Summary computes every indicator family once and returns their latest
// state.
func (e *Engine) Summary() Summary {
	sr := e.SupportResistance()
	return Summary{
		MACD:   e.MACD().Snapshot(),
		KDJ:    e.KDJ().Snapshot(),
		MA:     e.MAAlignment().Snapshot(),
		Volume: VolumeSnapshot{Ratio: e.VolumeRatio().Ratio},
		Levels: LevelsSnapshot{Supports: sr.Supports, Resistances: sr.Resistances},
	}
}
