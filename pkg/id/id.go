// Package id issues time-sortable signal record identifiers.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a ULID for the current time.
func New() string {
	return At(time.Now())
}

// At returns a ULID stamped with t. IDs issued within the same millisecond
// stay lexicographically increasing.
func At(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t.UTC()), entropy)
	if err != nil {
		panic(err)
	}
	return id.String()
}

// Time extracts the timestamp embedded in a ULID string.
func Time(s string) (time.Time, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse id %q: %w", s, err)
	}
	return ulid.Time(id.Time()).UTC(), nil
}

// Short is the trailing eight characters, enough to tell records apart in
// a listing.
func Short(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[len(s)-8:]
}
