// Package daily derives the shared "puzzle of the day": every player using
// the same dictionary, parameters and salt gets the same letters on the same
// UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a PCG seed pair from HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) (uint64, uint64) {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// Rand returns a generator seeded for date.
func Rand(date time.Time, salt string) *rand.Rand {
	return rand.New(rand.NewPCG(Seed(date, salt)))
}
