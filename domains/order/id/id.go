// Package id mints client order ids (cloids).
package id

import (
	"encoding/hex"
	"regexp"

	"github.com/rs/xid"
)

// cloid = "0x" + 128-bit hex, e.g. "0x00000000633a4f8c1d2e9ab304c5d6e7"
var cloidPattern = regexp.MustCompile(`^0x[0-9a-f]{32}$`)

// NewCloid returns a fresh client order id. The 12 random-ish bytes of an
// xid are zero-padded to the 16 bytes the exchange expects.
func NewCloid() string {
	raw := xid.New().Bytes()
	buf := make([]byte, 16)
	copy(buf[16-len(raw):], raw)
	return "0x" + hex.EncodeToString(buf)
}

// Valid reports whether s has the cloid shape.
func Valid(s string) bool {
	return cloidPattern.MatchString(s)
}
