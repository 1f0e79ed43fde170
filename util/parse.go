// Package util holds small helpers shared across packages.
package util

import (
	"strconv"
	"strings"
)

var sizeSuffixes = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize parses a human-readable size string ("10MB", "512KB", "2GB",
// or a plain byte count) into bytes. Returns defaultBytes when the string
// cannot be parsed.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	var multiplier int64 = 1
	for _, ss := range sizeSuffixes {
		if strings.HasSuffix(s, ss.suffix) {
			multiplier = ss.multiplier
			s = strings.TrimSpace(s[:len(s)-len(ss.suffix)])
			break
		}
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val < 0 {
		return defaultBytes
	}
	return val * multiplier
}

// MaskSecret hides sensitive parts of a string for safe display in logs.
// Strings at or below visiblePrefix characters are fully masked.
func MaskSecret(s string, visiblePrefix int) string {
	if len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}
