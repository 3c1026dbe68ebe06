// Package cache stores detected signals keyed on series content so repeat
// analyses of unchanged data skip recomputation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/rustyeddy/signalscope/market"
	"github.com/rustyeddy/signalscope/signals"
)

// Cache is a signal store. A miss is (zero, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (signals.TradingSignal, bool, error)
	Set(ctx context.Context, key string, sig signals.TradingSignal) error
}

// Nop never hits and discards writes.
type Nop struct{}

func (Nop) Get(context.Context, string) (signals.TradingSignal, bool, error) {
	return signals.TradingSignal{}, false, nil
}

func (Nop) Set(context.Context, string, signals.TradingSignal) error { return nil }

// Key hashes every bar of s together with a parameter fingerprint.
func Key(s market.Series, fingerprint string) string {
	h := sha256.New()
	h.Write([]byte(fingerprint))

	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	if s.HasVolume() {
		put(1)
	} else {
		put(0)
	}
	for _, b := range s.Bars() {
		put(uint64(b.Date.Unix()))
		put(math.Float64bits(b.Open))
		put(math.Float64bits(b.High))
		put(math.Float64bits(b.Low))
		put(math.Float64bits(b.Close))
		put(uint64(b.Volume))
	}
	return hex.EncodeToString(h.Sum(nil))
}
