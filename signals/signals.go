// Package signals folds indicator state and candlestick patterns into one
// composite trading signal using additive scoring.
package signals

import (
	"fmt"

	"github.com/rustyeddy/signalscope/indicators"
	"github.com/rustyeddy/signalscope/patterns"
)

// Direction is the recommended side of a signal.
type Direction int

const (
	Hold Direction = iota
	Buy
	Sell
)

func (d Direction) String() string {
	switch d {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Hold:
		return "hold"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Buy, Sell, Hold:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDirection parses "buy", "sell" or "hold".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	case "hold":
		return Hold, nil
	default:
		return Hold, fmt.Errorf("unknown direction %q", s)
	}
}

// Strength grades how far a score sits past the direction threshold.
type Strength int

const (
	Weak Strength = iota
	Moderate
	Strong
)

func (s Strength) String() string {
	switch s {
	case Strong:
		return "strong"
	case Moderate:
		return "moderate"
	case Weak:
		return "weak"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strength) MarshalText() ([]byte, error) {
	switch s {
	case Strong, Moderate, Weak:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid strength %d", int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strength) UnmarshalText(b []byte) error {
	v, err := ParseStrength(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStrength parses "strong", "moderate" or "weak".
func ParseStrength(s string) (Strength, error) {
	switch s {
	case "strong":
		return Strong, nil
	case "moderate":
		return Moderate, nil
	case "weak":
		return Weak, nil
	default:
		return Weak, fmt.Errorf("unknown strength %q", s)
	}
}

// TradingSignal is the composite result of one detection.
type TradingSignal struct {
	Direction  Direction          `json:"direction"`
	Strength   Strength           `json:"strength"`
	Score      float64            `json:"score"`
	Reasons    []string           `json:"reasons"`
	Indicators indicators.Summary `json:"indicators"`
	Patterns   []patterns.Result  `json:"patterns"`
}

// Label is the "strong buy" style rendering of direction and strength.
func (s TradingSignal) Label() string {
	if s.Direction == Hold {
		return Hold.String()
	}
	return s.Strength.String() + " " + s.Direction.String()
}
