package internal

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SplitPath splits a dot-notation path into segments.
// Every path has at least one segment; "" addresses the empty key.
// The result may be shared through GlobalPathCache and must not be modified.
func SplitPath(path string, normalize bool) []string {
	if normalize {
		path = NormalizeKey(path)
	}
	if segments, ok := GlobalPathCache.Get(path); ok {
		return segments
	}
	segments := strings.Split(path, PathSeparator)
	GlobalPathCache.Set(path, segments)
	return segments
}

// NormalizeKey returns the NFC form of a key so composed and decomposed
// spellings of the same text address the same entry.
func NormalizeKey(key string) string {
	if norm.NFC.IsNormalString(key) {
		return key
	}
	return norm.NFC.String(key)
}

// ParseArrayIndex parses a non-negative canonical decimal index ("0", "12", not "01" or "-1")
func ParseArrayIndex(segment string) (int, bool) {
	if len(segment) == 0 {
		return 0, false
	}
	// Fast path for single digit
	if len(segment) == 1 {
		if segment[0] >= '0' && segment[0] <= '9' {
			return int(segment[0] - '0'), true
		}
		return 0, false
	}
	if segment[0] == '0' {
		return 0, false
	}
	index := 0
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if index > (maxIndex-int(c-'0'))/10 {
			return 0, false
		}
		index = index*10 + int(c-'0')
	}
	return index, true
}

// ParseAndValidateArrayIndex parses segment as an index and checks it is within [0, length)
func ParseAndValidateArrayIndex(segment string, length int) (int, bool) {
	index, ok := ParseArrayIndex(segment)
	if !ok || index >= length {
		return 0, false
	}
	return index, true
}

const maxIndex = int(^uint(0) >> 1)
