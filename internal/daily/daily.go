// Package daily picks the puzzle of the day.
//
// The pick is deterministic for a given date and salt, so every process
// serving the same catalog agrees on today's puzzle without coordination.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"os"
	"time"
)

// DefaultSalt is used when DAILY_SALT is unset.
const DefaultSalt = "local_dev_salt"

// SaltFromEnv returns DAILY_SALT, or DefaultSalt when it is unset or empty.
func SaltFromEnv() string {
	if v := os.Getenv("DAILY_SALT"); v != "" {
		return v
	}
	return DefaultSalt
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PuzzleIndex returns a deterministic index in [0, n) for a date using
// HMAC-SHA256(salt, YYYY-MM-DD) % n. It returns 0 when n <= 0.
func PuzzleIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Pick returns today's entry from names, or "" when names is empty.
// names must be in a stable order (the catalog lists by name).
func Pick(date time.Time, salt string, names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[PuzzleIndex(date, salt, len(names))]
}
