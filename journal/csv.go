package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{"signal_id", "symbol", "as_of", "direction", "strength", "score", "reasons", "patterns", "created_at"}

// CSVJournal appends one row per signal. Reasons and patterns are joined
// with " | ".
type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

// NewCSV opens path for appending, writing the header when the file is new
// or empty.
func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordSignal(r SignalRecord) error {
	err := j.w.Write([]string{
		r.ID,
		r.Symbol,
		r.AsOf.Format("2006-01-02"),
		r.Direction.String(),
		r.Strength.String(),
		f(r.Score),
		strings.Join(r.Reasons, " | "),
		strings.Join(r.Patterns, " | "),
		r.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("record signal %s: %w", r.ID, err)
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64)
}
