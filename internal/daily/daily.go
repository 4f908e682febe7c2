package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// BoardSeed returns a deterministic generator seed for a date using
// HMAC(salt, YYYY-MM-DD), so every player sees the same board that day.
func BoardSeed(date time.Time, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes as the seed
	return binary.BigEndian.Uint64(sum[:8])
}
