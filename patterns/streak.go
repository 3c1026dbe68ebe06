package patterns

import (
	"fmt"
	"math"
	"sort"
)

// StreakCounts are the run lengths ScanAll checks for yang and yin streaks.
var StreakCounts = []int{3, 5, 7, 9}

func streakConfidence(count int) float64 {
	return math.Min(0.5+0.05*float64(count), 0.9)
}

// ConsecutiveYang matches count bullish bars ending at idx with strictly
// rising closes.
func (r *Recognizer) ConsecutiveYang(idx, count int) (Result, bool) {
	if !r.streak(idx, count, true) {
		return Result{}, false
	}
	pos, _ := r.s.Resolve(idx)

	name := fmt.Sprintf("%d连阳", count)
	nameEn := fmt.Sprintf("%d Consecutive Yang", count)
	switch count {
	case 9:
		name, nameEn = "九阳神功", "Nine Yang"
	case 7:
		name, nameEn = "七连阳", "Seven Consecutive Yang"
	}

	return Result{
		Name:        name,
		NameEn:      nameEn,
		Type:        Bullish,
		Confidence:  streakConfidence(count),
		Description: fmt.Sprintf("%d bullish bars in a row, each closing higher", count),
		Position:    pos,
	}, true
}

// ConsecutiveYin matches count bearish bars ending at idx with strictly
// falling closes.
func (r *Recognizer) ConsecutiveYin(idx, count int) (Result, bool) {
	if !r.streak(idx, count, false) {
		return Result{}, false
	}
	pos, _ := r.s.Resolve(idx)

	name := fmt.Sprintf("%d连阴", count)
	nameEn := fmt.Sprintf("%d Consecutive Yin", count)
	if count == 7 {
		name, nameEn = "七仙女下凡", "Seven Consecutive Yin"
	}

	return Result{
		Name:        name,
		NameEn:      nameEn,
		Type:        Bearish,
		Confidence:  streakConfidence(count),
		Description: fmt.Sprintf("%d bearish bars in a row, each closing lower", count),
		Position:    pos,
	}, true
}

func (r *Recognizer) streak(idx, count int, up bool) bool {
	if count < 1 {
		return false
	}
	pos, ok := r.window(idx, count)
	if !ok {
		return false
	}
	start := pos - count + 1
	for i := start; i <= pos; i++ {
		b := r.s.At(i)
		if up && !b.Bullish() || !up && !b.Bearish() {
			return false
		}
		if i == start {
			continue
		}
		prev := r.s.At(i - 1).Close
		if up && b.Close <= prev || !up && b.Close >= prev {
			return false
		}
	}
	return true
}

// checker is one pattern test at a position.
type checker func(idx int) (Result, bool)

func (r *Recognizer) checkers() []checker {
	cs := []checker{
		r.MorningStar,
		r.EveningStar,
		r.BullishEngulfing,
		r.BearishEngulfing,
		r.BullishHarami,
	}
	for _, n := range StreakCounts {
		n := n
		cs = append(cs, func(idx int) (Result, bool) { return r.ConsecutiveYang(idx, n) })
	}
	for _, n := range StreakCounts {
		n := n
		cs = append(cs, func(idx int) (Result, bool) { return r.ConsecutiveYin(idx, n) })
	}
	return cs
}

// ScanAll runs every checker at idx and returns the matches ordered by
// confidence, highest first. Ties keep detection order. No match yields an
// empty, non-nil slice.
func (r *Recognizer) ScanAll(idx int) []Result {
	out := []Result{}
	for _, check := range r.checkers() {
		if res, ok := check(idx); ok {
			out = append(out, res)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}
