package types

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// Checksum computes a deterministic fingerprint of (content, date) used
// for approximate duplicate detection on imported records.
//
// The hash is a 32-bit rolling hash over the UTF-16 code units of
// trimmed content joined with the date string, encoded as the base-36
// absolute value. Matching checksums mean "likely duplicate", not proof:
// collisions are possible and callers decide what to do with a match.
// The exact recipe is load-bearing: checksums already persisted by
// earlier exports must keep matching.
func Checksum(content, date string) string {
	s := strings.TrimSpace(content) + "-" + date
	var hash int32
	for _, u := range utf16.Encode([]rune(s)) {
		hash = hash<<5 - hash + int32(u)
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
