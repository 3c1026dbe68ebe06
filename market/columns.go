package market

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Canonical column names.
const (
	ColDate   = "date"
	ColOpen   = "open"
	ColHigh   = "high"
	ColLow    = "low"
	ColClose  = "close"
	ColVolume = "volume"
)

// RequiredColumns must be present for any series.
var RequiredColumns = []string{ColOpen, ColHigh, ColLow, ColClose}

// aliases maps provider-specific headers onto canonical names. Tushare style
// daily bars use trade_date and vol.
var aliases = map[string]string{
	"trade_date": ColDate,
	"datetime":   ColDate,
	"time":       ColDate,
	"o":          ColOpen,
	"h":          ColHigh,
	"l":          ColLow,
	"c":          ColClose,
	"vol":        ColVolume,
	"v":          ColVolume,
}

// ColumnError reports required columns that could not be found.
type ColumnError struct {
	Missing []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns, strings.Join(e.Missing, ", "))
}

func (e *ColumnError) Unwrap() error { return ErrMissingColumns }

// NormalizeColumn lower-cases and trims a column name and maps known
// aliases to the canonical set.
func NormalizeColumn(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if c, ok := aliases[n]; ok {
		return c
	}
	return n
}

// checkColumns returns a ColumnError when any required column is absent.
func checkColumns(have map[string]bool) error {
	var missing []string
	for _, c := range RequiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &ColumnError{Missing: missing}
	}
	return nil
}

// FromColumns builds a Series from column-oriented data. Column names are
// case-insensitive. dates may be nil; when given it must match the column
// length. A missing volume column yields a series with HasVolume false.
func FromColumns(cols map[string][]float64, dates []time.Time) (Series, error) {
	norm := make(map[string][]float64, len(cols))
	have := make(map[string]bool, len(cols))
	for k, v := range cols {
		c := NormalizeColumn(k)
		norm[c] = v
		have[c] = true
	}
	if err := checkColumns(have); err != nil {
		return Series{}, err
	}

	n := len(norm[ColClose])
	for _, c := range append(RequiredColumns, ColVolume) {
		if v, ok := norm[c]; ok && len(v) != n {
			return Series{}, fmt.Errorf("column %q has %d values, want %d", c, len(v), n)
		}
	}
	if dates != nil && len(dates) != n {
		return Series{}, fmt.Errorf("dates has %d values, want %d", len(dates), n)
	}

	vol, hasVolume := norm[ColVolume]
	bars := make([]Bar, n)
	for i := 0; i < n; i++ {
		bars[i] = Bar{
			Open:  norm[ColOpen][i],
			High:  norm[ColHigh][i],
			Low:   norm[ColLow][i],
			Close: norm[ColClose][i],
		}
		if hasVolume {
			bars[i].Volume = int64(math.Round(vol[i]))
		}
		if dates != nil {
			bars[i].Date = dates[i]
		}
	}

	s, err := NewSeries(bars)
	if err != nil {
		return Series{}, err
	}
	if !hasVolume {
		s = s.WithoutVolume()
	}
	return s, nil
}
