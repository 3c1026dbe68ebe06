package market

import "time"

// Bar represents one daily OHLCV trading session.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Body is the absolute distance between open and close.
func (b Bar) Body() float64 {
	if b.Close > b.Open {
		return b.Close - b.Open
	}
	return b.Open - b.Close
}

// Range is high minus low.
func (b Bar) Range() float64 {
	return b.High - b.Low
}

// Bullish reports a close above the open (a yang candle).
func (b Bar) Bullish() bool { return b.Close > b.Open }

// Bearish reports a close below the open (a yin candle).
func (b Bar) Bearish() bool { return b.Close < b.Open }
