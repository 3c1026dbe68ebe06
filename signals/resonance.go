package signals

import "github.com/rustyeddy/signalscope/indicators"

// FamilyBias is the directional reading of one indicator family.
type FamilyBias struct {
	Bullish bool `json:"bullish"`
	Bearish bool `json:"bearish"`
}

// Resonance counts agreeing families.
type Resonance struct {
	BullishCount       int  `json:"bullish_count"`
	BearishCount       int  `json:"bearish_count"`
	IsBullishResonance bool `json:"is_bullish_resonance"`
	IsBearishResonance bool `json:"is_bearish_resonance"`
}

// ResonanceStatus is the per-family view plus the vote.
type ResonanceStatus struct {
	MACD      FamilyBias `json:"macd"`
	KDJ       FamilyBias `json:"kdj"`
	MA        FamilyBias `json:"ma"`
	Resonance Resonance  `json:"resonance"`
}

// ResonanceQuorum is how many families must agree.
const ResonanceQuorum = 2

// ResonanceOf derives the resonance view from a summary. Only the MACD, KDJ
// and MA sections are read.
func ResonanceOf(sum indicators.Summary) ResonanceStatus {
	m, k := sum.MACD, sum.KDJ
	st := ResonanceStatus{
		MACD: FamilyBias{
			Bullish: m.GoldenCross || (m.AboveZero && m.HistogramExpanding),
			Bearish: m.DeathCross || (!m.AboveZero && m.HistogramExpanding),
		},
		KDJ: FamilyBias{
			Bullish: k.GoldenCross || k.Oversold,
			Bearish: k.DeathCross || k.Overbought,
		},
		MA: FamilyBias{
			Bullish: sum.MA.Bullish,
			Bearish: sum.MA.Bearish,
		},
	}

	for _, f := range []FamilyBias{st.MACD, st.KDJ, st.MA} {
		if f.Bullish {
			st.Resonance.BullishCount++
		}
		if f.Bearish {
			st.Resonance.BearishCount++
		}
	}
	st.Resonance.IsBullishResonance = st.Resonance.BullishCount >= ResonanceQuorum
	st.Resonance.IsBearishResonance = st.Resonance.BearishCount >= ResonanceQuorum
	return st
}
