package util

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"

	"lukechampine.com/uint128"
)

// Mathmatically correct modulo function (% as done in Python, Haskell, Ruby, etc.)
//
// Modulo(-1, 5) = 4
//
// Modulo(3, -5) = -2
func Modulo(x, n int) int {
	return (x%n + n) % n
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Fingerprint condenses a key set into a single 128-bit value that is
// independent of enumeration order. Two tables hold the same keys iff
// their fingerprints match.
func Fingerprint(keys []string) uint128.Uint128 {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	b := md5.Sum([]byte(strings.Join(sorted, "\x00")))

	return uint128.FromBytesBE(b[:])
}

func FingerprintHex(u uint128.Uint128) string {
	b := make([]byte, 16)
	u.PutBytesBE(b)

	return strings.TrimLeft(hex.EncodeToString(b), "0")
}
