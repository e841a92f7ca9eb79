package cost

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// suffix multipliers accepted by ParseTokens.
var multipliers = map[byte]float64{
	'k': 1_000,
	'm': 1_000_000,
	'b': 1_000_000_000,
}

// ParseTokens parses a human token count like "1000", "10k", "1.5M" or
// "1b" into a token count. Suffixes are case-insensitive. Negative,
// empty and fractional results are rejected.
func ParseTokens(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty token count")
	}

	mult := 1.0
	if m, ok := multipliers[s[len(s)-1]|0x20]; ok {
		mult = m
		s = s[:len(s)-1]
		if s == "" {
			return 0, fmt.Errorf("token count has a suffix but no number")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token count %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("token count must not be negative")
	}

	total := v * mult
	if total != math.Trunc(total) {
		return 0, fmt.Errorf("token count %q is not a whole number of tokens", s)
	}
	if total > math.MaxInt64 {
		return 0, fmt.Errorf("token count too large")
	}

	return int64(total), nil
}
