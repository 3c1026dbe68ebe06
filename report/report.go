// Package report renders summaries, signals and resonance views as
// markdown lists for terminals and LLM prompts.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rustyeddy/signalscope/indicators"
	"github.com/rustyeddy/signalscope/patterns"
	"github.com/rustyeddy/signalscope/signals"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func levels(xs []float64) string {
	if len(xs) == 0 {
		return "none"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%.2f", x)
	}
	return strings.Join(parts, ", ")
}

// Technical renders the indicator summary.
func Technical(sum indicators.Summary) string {
	m, k, ma := sum.MACD, sum.KDJ, sum.MA

	var b strings.Builder
	b.WriteString("### MACD\n")
	fmt.Fprintf(&b, "- DIF: %.4f\n", m.DIF)
	fmt.Fprintf(&b, "- DEA: %.4f\n", m.DEA)
	fmt.Fprintf(&b, "- Histogram: %.4f\n", m.Histogram)
	fmt.Fprintf(&b, "- Golden cross: %s\n", yesNo(m.GoldenCross))
	fmt.Fprintf(&b, "- Death cross: %s\n", yesNo(m.DeathCross))
	fmt.Fprintf(&b, "- Above zero: %s\n", yesNo(m.AboveZero))
	b.WriteString("\n### KDJ\n")
	fmt.Fprintf(&b, "- K: %.2f\n", k.K)
	fmt.Fprintf(&b, "- D: %.2f\n", k.D)
	fmt.Fprintf(&b, "- J: %.2f\n", k.J)
	fmt.Fprintf(&b, "- Golden cross: %s\n", yesNo(k.GoldenCross))
	fmt.Fprintf(&b, "- Overbought: %s\n", yesNo(k.Overbought))
	fmt.Fprintf(&b, "- Oversold: %s\n", yesNo(k.Oversold))
	b.WriteString("\n### Moving averages\n")
	fmt.Fprintf(&b, "- Bullish alignment: %s\n", yesNo(ma.Bullish))
	fmt.Fprintf(&b, "- Bearish alignment: %s\n", yesNo(ma.Bearish))
	periods := make([]int, 0, len(ma.Values))
	for p := range ma.Values {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	for _, p := range periods {
		if v := ma.Values[p]; v.OK {
			fmt.Fprintf(&b, "- MA%d: %.2f\n", p, v.V)
		} else {
			fmt.Fprintf(&b, "- MA%d: n/a\n", p)
		}
	}
	b.WriteString("\n### Volume\n")
	fmt.Fprintf(&b, "- Ratio: %.2f\n", sum.Volume.Ratio)
	b.WriteString("\n### Key levels\n")
	fmt.Fprintf(&b, "- Supports: %s\n", levels(sum.Levels.Supports))
	fmt.Fprintf(&b, "- Resistances: %s\n", levels(sum.Levels.Resistances))
	return b.String()
}

// Signal renders direction, strength, score and reasons.
func Signal(sig signals.TradingSignal) string {
	var b strings.Builder
	b.WriteString("### Composite signal\n")
	fmt.Fprintf(&b, "- Direction: %s\n", strings.ToUpper(sig.Direction.String()))
	fmt.Fprintf(&b, "- Strength: %s\n", sig.Strength)
	fmt.Fprintf(&b, "- Score: %.1f\n", sig.Score)
	b.WriteString("\n### Reasons\n")
	for _, r := range sig.Reasons {
		b.WriteString("- " + r + "\n")
	}
	if len(sig.Patterns) > 0 {
		b.WriteString("\n### Patterns\n")
		b.WriteString(Patterns(sig.Patterns))
	}
	return b.String()
}

// Patterns renders one line per pattern.
func Patterns(pats []patterns.Result) string {
	if len(pats) == 0 {
		return "- none\n"
	}
	var b strings.Builder
	for _, p := range pats {
		fmt.Fprintf(&b, "- %s (%s): %s, confidence %.2f, bar %d\n",
			p.NameEn, p.Name, p.Type, p.Confidence, p.Position)
	}
	return b.String()
}

func bias(f signals.FamilyBias) string {
	switch {
	case f.Bullish && f.Bearish:
		return "mixed"
	case f.Bullish:
		return "bullish"
	case f.Bearish:
		return "bearish"
	default:
		return "neutral"
	}
}

// Resonance renders the family vote.
func Resonance(st signals.ResonanceStatus) string {
	var b strings.Builder
	b.WriteString("### Resonance\n")
	fmt.Fprintf(&b, "- MACD: %s\n", bias(st.MACD))
	fmt.Fprintf(&b, "- KDJ: %s\n", bias(st.KDJ))
	fmt.Fprintf(&b, "- MA: %s\n", bias(st.MA))
	r := st.Resonance
	fmt.Fprintf(&b, "- Bullish families: %d/3", r.BullishCount)
	if r.IsBullishResonance {
		b.WriteString(" (resonance)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Bearish families: %d/3", r.BearishCount)
	if r.IsBearishResonance {
		b.WriteString(" (resonance)")
	}
	b.WriteString("\n")
	return b.String()
}
