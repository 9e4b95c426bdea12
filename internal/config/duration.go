package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses age-threshold strings like "30d" or "2w".
// Supported units: s (seconds), m (minutes), h (hours), d (days),
// w (weeks).
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration %q: want <number><unit>, e.g. 30d", s)
	}

	numStr, unit := s[:len(s)-1], s[len(s)-1:]
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q in duration %q", numStr, s)
	}
	if num < 0 {
		return 0, fmt.Errorf("duration %q must not be negative", s)
	}

	switch unit {
	case "s":
		return time.Duration(num) * time.Second, nil
	case "m":
		return time.Duration(num) * time.Minute, nil
	case "h":
		return time.Duration(num) * time.Hour, nil
	case "d":
		return time.Duration(num) * 24 * time.Hour, nil
	case "w":
		return time.Duration(num) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid unit %q in duration %q: use s, m, h, d, or w", unit, s)
	}
}
