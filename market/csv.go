package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	compactLayout = "20060102"
)

// LoadCSV reads a bar series from a CSV file.
func LoadCSV(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("open bars: %w", err)
	}
	defer f.Close()

	s, err := ReadCSV(f)
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ReadCSV parses bars from CSV with a header row. Headers are matched
// case-insensitively after alias normalization; unknown columns are
// ignored. Rows must already be in ascending date order.
func ReadCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Series{}, fmt.Errorf("empty csv: %w", &ColumnError{Missing: RequiredColumns})
		}
		return Series{}, fmt.Errorf("read header: %w", err)
	}

	pos := make(map[string]int, len(header))
	have := make(map[string]bool, len(header))
	for i, h := range header {
		c := NormalizeColumn(h)
		if _, dup := pos[c]; dup {
			continue // keep-first
		}
		pos[c] = i
		have[c] = true
	}
	if err := checkColumns(have); err != nil {
		return Series{}, err
	}

	_, hasVolume := pos[ColVolume]
	dateIdx, hasDate := pos[ColDate]

	var bars []Bar
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return Series{}, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		var b Bar
		fields := []struct {
			col string
			dst *float64
		}{
			{ColOpen, &b.Open},
			{ColHigh, &b.High},
			{ColLow, &b.Low},
			{ColClose, &b.Close},
		}
		for _, fl := range fields {
			v, err := parseField(rec, pos[fl.col])
			if err != nil {
				return Series{}, fmt.Errorf("line %d %s: %w", line, fl.col, err)
			}
			*fl.dst = v
		}
		if hasVolume {
			v, err := parseField(rec, pos[ColVolume])
			if err != nil {
				return Series{}, fmt.Errorf("line %d volume: %w", line, err)
			}
			b.Volume = int64(math.Round(v))
		}
		if hasDate && dateIdx < len(rec) {
			d, err := ParseDate(rec[dateIdx])
			if err != nil {
				return Series{}, fmt.Errorf("line %d date: %w", line, err)
			}
			b.Date = d
		}
		bars = append(bars, b)
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

// ParseDate accepts YYYY-MM-DD or the compact YYYYMMDD trading-day form.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layout := dateLayout
	if len(s) == len(compactLayout) && !strings.Contains(s, "-") {
		layout = compactLayout
	}
	return time.ParseInLocation(layout, s, time.UTC)
}

func parseField(rec []string, i int) (float64, error) {
	if i >= len(rec) {
		return 0, fmt.Errorf("short record: %d fields", len(rec))
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
}
