package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sony/gobreaker"

	"github.com/rustyeddy/signalscope/signals"
)

// Redis keeps signals as JSON strings behind a circuit breaker. Once the
// breaker opens, calls fail fast with gobreaker.ErrOpenState until it
// half-opens again.
type Redis struct {
	client  redis.Cmdable
	prefix  string
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker
}

// NewRedis wraps client. A zero ttl stores entries without expiry.
func NewRedis(client redis.Cmdable, prefix string, ttl time.Duration) *Redis {
	st := gobreaker.Settings{
		Name:     "signal-cache",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			if c.ConsecutiveFailures >= 3 {
				return true
			}
			return c.Requests >= 20 && float64(c.TotalFailures)/float64(c.Requests) > 0.05
		},
	}
	return &Redis{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		breaker: gobreaker.NewCircuitBreaker(st),
	}
}

func (r *Redis) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

// State reports the breaker state.
func (r *Redis) State() gobreaker.State { return r.breaker.State() }

func (r *Redis) Get(ctx context.Context, key string) (signals.TradingSignal, bool, error) {
	v, err := r.breaker.Execute(func() (interface{}, error) {
		b, err := r.client.Get(ctx, r.key(key)).Bytes()
		if errors.Is(err, redis.Nil) {
			return []byte(nil), nil
		}
		return b, err
	})
	if err != nil {
		return signals.TradingSignal{}, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	b := v.([]byte)
	if b == nil {
		return signals.TradingSignal{}, false, nil
	}

	var sig signals.TradingSignal
	if err := json.Unmarshal(b, &sig); err != nil {
		return signals.TradingSignal{}, false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return sig, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, sig signals.TradingSignal) error {
	b, err := json.Marshal(sig)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	_, err = r.breaker.Execute(func() (interface{}, error) {
		return nil, r.client.Set(ctx, r.key(key), b, r.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
