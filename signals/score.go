package signals

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/signalscope/indicators"
	"github.com/rustyeddy/signalscope/patterns"
)

// Score thresholds on the clamped score.
const (
	BuyThreshold      = 30.0
	ModerateThreshold = 45.0
	StrongThreshold   = 60.0
	MaxScore          = 100.0
)

// Reasons that callers may match on.
const (
	ReasonBullishResonance = "MACD + KDJ golden cross resonance (strong buy signal)"
	ReasonBearishResonance = "MACD + KDJ death cross resonance (strong sell signal)"
	ReasonUnclear          = "signal unclear, recommend watching"
)

// Score computes the composite signal for an indicator summary and the
// patterns found at the latest bar. It is a pure function of its inputs.
func Score(sum indicators.Summary, pats []patterns.Result) TradingSignal {
	return score(sum, pats, zerolog.Nop())
}

// Classify maps a clamped score to a direction and strength. Boundaries are
// inclusive: 30 is a buy, 60 a strong buy.
func Classify(score float64) (Direction, Strength) {
	switch {
	case score >= BuyThreshold:
		return Buy, grade(score)
	case score <= -BuyThreshold:
		return Sell, grade(-score)
	default:
		return Hold, Weak
	}
}

func grade(abs float64) Strength {
	switch {
	case abs >= StrongThreshold:
		return Strong
	case abs >= ModerateThreshold:
		return Moderate
	default:
		return Weak
	}
}

type tally struct {
	score   float64
	reasons []string
	log     zerolog.Logger
}

func (t *tally) add(rule string, points float64, reason string) {
	t.score += points
	if reason != "" {
		t.reasons = append(t.reasons, reason)
	}
	t.log.Debug().
		Str("rule", rule).
		Float64("points", points).
		Float64("running", t.score).
		Msg("score contribution")
}

func score(sum indicators.Summary, pats []patterns.Result, log zerolog.Logger) TradingSignal {
	t := &tally{reasons: []string{}, log: log}
	macd, kdj := sum.MACD, sum.KDJ

	if macd.AboveZero {
		t.add("macd_zero", 10, "MACD above zero axis")
	} else {
		t.add("macd_zero", -10, "")
	}
	switch {
	case macd.GoldenCross:
		t.add("macd_cross", 20, "MACD golden cross")
	case macd.DeathCross:
		t.add("macd_cross", -20, "MACD death cross")
	}
	if macd.Histogram > 0 {
		t.add("macd_histogram", 5, "")
	} else {
		t.add("macd_histogram", -5, "")
	}

	switch {
	case kdj.GoldenCross && kdj.J < 50:
		t.add("kdj_cross", 25, "KDJ low-position golden cross (high win-rate signal)")
	case kdj.GoldenCross:
		t.add("kdj_cross", 15, "KDJ golden cross")
	case kdj.DeathCross && kdj.J > 50:
		t.add("kdj_cross", -25, "KDJ high-position death cross (high win-rate signal)")
	case kdj.DeathCross:
		t.add("kdj_cross", -15, "KDJ death cross")
	}
	if kdj.Oversold {
		t.add("kdj_zone", 10, "KDJ oversold")
	}
	if kdj.Overbought {
		t.add("kdj_zone", -10, "KDJ overbought")
	}

	switch {
	case sum.MA.Bullish:
		t.add("ma_alignment", 15, "moving averages in bullish alignment")
	case sum.MA.Bearish:
		t.add("ma_alignment", -15, "moving averages in bearish alignment")
	}

	ratio := sum.Volume.Ratio
	switch {
	case ratio > 2 && t.score > 0:
		t.add("volume", 10, fmt.Sprintf("volume surge on advance (ratio %.1f)", ratio))
	case ratio > 2:
		t.add("volume", -5, fmt.Sprintf("volume surge on decline (ratio %.1f)", ratio))
	case ratio < 0.5:
		t.add("volume", 0, fmt.Sprintf("low-volume consolidation (ratio %.1f)", ratio))
	}

	for _, p := range pats {
		switch p.Type {
		case patterns.Bullish:
			t.add("pattern", p.Confidence*15, "bullish pattern: "+p.NameEn)
		case patterns.Bearish:
			t.add("pattern", -p.Confidence*15, "bearish pattern: "+p.NameEn)
		case patterns.Neutral:
		}
	}

	resonance := false
	switch {
	case macd.GoldenCross && kdj.GoldenCross:
		t.add("resonance", 15, "")
		t.reasons = append([]string{ReasonBullishResonance}, t.reasons...)
		resonance = true
	case macd.DeathCross && kdj.DeathCross:
		t.add("resonance", -15, "")
		t.reasons = append([]string{ReasonBearishResonance}, t.reasons...)
		resonance = true
	}

	final := math.Max(-MaxScore, math.Min(MaxScore, t.score))
	dir, str := Classify(final)
	if dir == Hold && !resonance {
		t.reasons = append(t.reasons, ReasonUnclear)
	}

	if pats == nil {
		pats = []patterns.Result{}
	}
	return TradingSignal{
		Direction:  dir,
		Strength:   str,
		Score:      math.Round(final*10) / 10,
		Reasons:    t.reasons,
		Indicators: sum,
		Patterns:   pats,
	}
}
