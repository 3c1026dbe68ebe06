package signals

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/signalscope/indicators"
	"github.com/rustyeddy/signalscope/market"
	"github.com/rustyeddy/signalscope/patterns"
)

// neutral is a summary that contributes only the below-zero MACD and
// non-positive histogram penalties.
func neutral() indicators.Summary {
	return indicators.Summary{Volume: indicators.VolumeSnapshot{Ratio: 1}}
}

func goldenSummary() indicators.Summary {
	s := neutral()
	s.MACD = indicators.MACDSnapshot{AboveZero: true, GoldenCross: true, Histogram: 0.5}
	s.KDJ = indicators.KDJSnapshot{K: 30, D: 28, J: 40, GoldenCross: true}
	return s
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		dir   Direction
		str   Strength
	}{
		{100, Buy, Strong},
		{60, Buy, Strong},
		{59.999, Buy, Moderate},
		{45, Buy, Moderate},
		{44.999, Buy, Weak},
		{30, Buy, Weak},
		{29.999, Hold, Weak},
		{0, Hold, Weak},
		{-29.999, Hold, Weak},
		{-30, Sell, Weak},
		{-45, Sell, Moderate},
		{-59.999, Sell, Moderate},
		{-60, Sell, Strong},
		{-100, Sell, Strong},
	}
	for _, tt := range tests {
		dir, str := Classify(tt.score)
		assert.Equal(t, tt.dir, dir, "score %v", tt.score)
		assert.Equal(t, tt.str, str, "score %v", tt.score)
	}
}

func TestScoreNeutral(t *testing.T) {
	sig := Score(neutral(), nil)
	assert.Equal(t, -15.0, sig.Score)
	assert.Equal(t, Hold, sig.Direction)
	assert.Equal(t, Weak, sig.Strength)
	assert.Equal(t, []string{ReasonUnclear}, sig.Reasons)
	assert.NotNil(t, sig.Patterns)
}

func TestScoreResonanceBonus(t *testing.T) {
	both := Score(goldenSummary(), nil)
	// 10 above zero, 20 MACD cross, 5 histogram, 25 low KDJ cross, 15 bonus
	assert.Equal(t, 75.0, both.Score)
	assert.Equal(t, Buy, both.Direction)
	assert.Equal(t, Strong, both.Strength)
	require.NotEmpty(t, both.Reasons)
	assert.Equal(t, ReasonBullishResonance, both.Reasons[0])

	oneOff := goldenSummary()
	oneOff.KDJ.GoldenCross = false
	single := Score(oneOff, nil)
	assert.Equal(t, 35.0, single.Score)
	assert.NotContains(t, single.Reasons, ReasonBullishResonance)
	assert.Equal(t, 15.0+25.0, both.Score-single.Score, "bonus on top of the KDJ cross")
}

func TestScoreKDJCrossPosition(t *testing.T) {
	s := neutral()
	s.KDJ = indicators.KDJSnapshot{GoldenCross: true, J: 60}
	high := Score(s, nil)
	s.KDJ.J = 40
	low := Score(s, nil)
	assert.Equal(t, 10.0, low.Score-high.Score)
	assert.Contains(t, low.Reasons, "KDJ low-position golden cross (high win-rate signal)")
	assert.Contains(t, high.Reasons, "KDJ golden cross")

	s.KDJ = indicators.KDJSnapshot{DeathCross: true, J: 60}
	assert.Equal(t, -15.0-25.0, Score(s, nil).Score)
	s.KDJ.J = 40
	assert.Equal(t, -15.0-15.0, Score(s, nil).Score)
}

func TestScoreZoneAndCrossStack(t *testing.T) {
	s := neutral()
	s.KDJ = indicators.KDJSnapshot{GoldenCross: true, Oversold: true, J: 10}
	sig := Score(s, nil)
	assert.Equal(t, -15.0+25.0+10.0, sig.Score)
	assert.Contains(t, sig.Reasons, "KDJ oversold")
}

func TestScoreVolume(t *testing.T) {
	up := neutral()
	up.MACD = indicators.MACDSnapshot{AboveZero: true, Histogram: 1}
	up.Volume.Ratio = 2.5
	sig := Score(up, nil)
	assert.Equal(t, 25.0, sig.Score)
	assert.Contains(t, sig.Reasons, "volume surge on advance (ratio 2.5)")

	down := neutral()
	down.Volume.Ratio = 3
	sig = Score(down, nil)
	assert.Equal(t, -20.0, sig.Score)
	assert.Contains(t, sig.Reasons, "volume surge on decline (ratio 3.0)")

	quiet := neutral()
	quiet.Volume.Ratio = 0.4
	sig = Score(quiet, nil)
	assert.Equal(t, -15.0, sig.Score)
	assert.Contains(t, sig.Reasons, "low-volume consolidation (ratio 0.4)")
}

func TestScorePatternsAndRounding(t *testing.T) {
	s := neutral()
	s.MACD = indicators.MACDSnapshot{AboveZero: true, Histogram: 1}
	pats := []patterns.Result{
		{NameEn: "Bull", Type: patterns.Bullish, Confidence: 0.75},
		{NameEn: "Flat", Type: patterns.Neutral, Confidence: 0.9},
	}
	sig := Score(s, pats)
	assert.Equal(t, 26.3, sig.Score)
	assert.Contains(t, sig.Reasons, "bullish pattern: Bull")
	assert.Len(t, sig.Patterns, 2)
	assert.Equal(t, Hold, sig.Direction)
}

func TestScoreClamp(t *testing.T) {
	up := goldenSummary()
	up.KDJ.Oversold = true
	up.MA.Bullish = true
	up.Volume.Ratio = 3
	sig := Score(up, nil)
	assert.Equal(t, 100.0, sig.Score)
	assert.Equal(t, Buy, sig.Direction)
	assert.Equal(t, Strong, sig.Strength)

	down := neutral()
	down.MACD = indicators.MACDSnapshot{DeathCross: true, Histogram: -1}
	down.KDJ = indicators.KDJSnapshot{DeathCross: true, Overbought: true, J: 90}
	down.MA.Bearish = true
	down.Volume.Ratio = 3
	sig = Score(down, []patterns.Result{{NameEn: "Bear", Type: patterns.Bearish, Confidence: 0.7}})
	assert.Equal(t, -100.0, sig.Score)
	assert.Equal(t, Sell, sig.Direction)
	assert.Equal(t, Strong, sig.Strength)
	assert.Equal(t, ReasonBearishResonance, sig.Reasons[0])
}

func TestScoreHoldKeepsResonanceReason(t *testing.T) {
	s := neutral()
	s.MACD = indicators.MACDSnapshot{GoldenCross: true, Histogram: 0.1}
	s.KDJ = indicators.KDJSnapshot{GoldenCross: true, J: 55}
	s.MA.Bearish = true
	pats := []patterns.Result{{NameEn: "Bear", Type: patterns.Bearish, Confidence: 0.7}}

	sig := Score(s, pats)
	// -10 +20 +5 +15 -15 -10.5 +15
	assert.Equal(t, 19.5, sig.Score)
	assert.Equal(t, Hold, sig.Direction)
	assert.Equal(t, ReasonBullishResonance, sig.Reasons[0])
	assert.NotContains(t, sig.Reasons, ReasonUnclear)
}

func TestResonanceOf(t *testing.T) {
	tests := []struct {
		name      string
		sum       indicators.Summary
		bull      int
		bear      int
		bullReson bool
		bearReson bool
	}{
		{"nothing", indicators.Summary{}, 0, 0, false, false},
		{"macd expanding above zero and ma", indicators.Summary{
			MACD: indicators.MACDSnapshot{AboveZero: true, HistogramExpanding: true},
			MA:   indicators.MASnapshot{Bullish: true},
		}, 2, 0, true, false},
		{"all bearish", indicators.Summary{
			MACD: indicators.MACDSnapshot{DeathCross: true},
			KDJ:  indicators.KDJSnapshot{Overbought: true},
			MA:   indicators.MASnapshot{Bearish: true},
		}, 0, 3, false, true},
		{"split", indicators.Summary{
			MACD: indicators.MACDSnapshot{GoldenCross: true},
			KDJ:  indicators.KDJSnapshot{DeathCross: true},
		}, 1, 1, false, false},
		{"oversold with expanding sell-off", indicators.Summary{
			MACD: indicators.MACDSnapshot{HistogramExpanding: true},
			KDJ:  indicators.KDJSnapshot{Oversold: true},
			MA:   indicators.MASnapshot{Bearish: true},
		}, 1, 2, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ResonanceOf(tt.sum)
			assert.Equal(t, tt.bull, st.Resonance.BullishCount)
			assert.Equal(t, tt.bear, st.Resonance.BearishCount)
			assert.Equal(t, tt.bullReson, st.Resonance.IsBullishResonance)
			assert.Equal(t, tt.bearReson, st.Resonance.IsBearishResonance)
		})
	}
}

func randomSeries(seed int64, n int) market.Series {
	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]market.Bar, n)
	price := 20.0
	for i := range bars {
		o := price
		c := o * (1 + rng.NormFloat64()*0.025)
		bars[i] = market.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   o,
			High:   math.Max(o, c) * (1 + rng.Float64()*0.01),
			Low:    math.Min(o, c) * (1 - rng.Float64()*0.01),
			Close:  c,
			Volume: int64(500_000 + rng.Intn(2_000_000)),
		}
		price = c
	}
	return market.MustSeries(bars)
}

func TestDetectProperties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := randomSeries(seed, 120)
		d, err := New(s)
		require.NoError(t, err)

		a, b := d.Detect(), d.Detect()
		assert.Equal(t, a, b)
		assert.GreaterOrEqual(t, a.Score, -100.0)
		assert.LessOrEqual(t, a.Score, 100.0)
		assert.NotEmpty(t, a.Reasons)

		r := d.Resonance()
		for _, c := range []int{r.Resonance.BullishCount, r.Resonance.BearishCount} {
			assert.GreaterOrEqual(t, c, 0)
			assert.LessOrEqual(t, c, 3)
		}
		assert.Equal(t, r.Resonance.BullishCount >= 2, r.Resonance.IsBullishResonance)
		assert.Equal(t, r.Resonance.BearishCount >= 2, r.Resonance.IsBearishResonance)
	}
}

func TestDetectShortSeries(t *testing.T) {
	d, err := New(randomSeries(7, 1))
	require.NoError(t, err)
	sig := d.Detect()
	assert.Empty(t, sig.Patterns)
	assert.GreaterOrEqual(t, sig.Score, -100.0)
}

func TestNewRequiresVolume(t *testing.T) {
	_, err := New(randomSeries(3, 30).WithoutVolume())
	assert.True(t, errors.Is(err, indicators.ErrNoVolume))
}

func TestDetectWithOptionsAndLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	d, err := New(randomSeries(11, 80),
		WithIndicators(indicators.WithMAPeriods(5, 10)),
		WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10}, d.Engine().Params().MAPeriods)

	d.Detect()
	assert.Contains(t, buf.String(), "score contribution")
	assert.Contains(t, buf.String(), "signal detected")
}

func TestTradingSignalJSON(t *testing.T) {
	sig := Score(goldenSummary(), []patterns.Result{{Name: "x", Type: patterns.Bullish, Confidence: 0.6}})
	b, err := json.Marshal(sig)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"direction", "strength", "score", "reasons", "indicators", "patterns"} {
		assert.Contains(t, m, k)
	}
	assert.Equal(t, "buy", m["direction"])
	assert.Equal(t, "strong", m["strength"])

	var back TradingSignal
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, sig.Direction, back.Direction)
	assert.Equal(t, sig.Score, back.Score)
	assert.Equal(t, sig.Reasons, back.Reasons)
}

func TestEnumText(t *testing.T) {
	for _, d := range []Direction{Buy, Sell, Hold} {
		b, err := d.MarshalText()
		require.NoError(t, err)
		var back Direction
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, d, back)
	}
	for _, s := range []Strength{Strong, Moderate, Weak} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back Strength
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}
	_, err := ParseDirection("long")
	assert.Error(t, err)
	_, err = Strength(7).MarshalText()
	assert.Error(t, err)

	assert.Equal(t, "strong buy", TradingSignal{Direction: Buy, Strength: Strong}.Label())
	assert.Equal(t, "hold", TradingSignal{Direction: Hold}.Label())
}
