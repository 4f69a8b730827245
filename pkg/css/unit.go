// Package css parses CSS-like primitive values (lengths, colors, shadow
// declarations) into the canonical forms the comparison engine operates
// on. Every parser in this package degrades to a "not parseable" return
// instead of an error: one malformed style value must never abort a whole
// comparison run.
package css

import (
	"strconv"
	"strings"
)

// DefaultBaseFontSize is the root font size assumed when none is supplied,
// matching the browser default.
const DefaultBaseFontSize = 16.0

// ParseUnitValue converts a CSS-like length into absolute pixels.
// It accepts numbers, numeric strings, and strings with px, rem, em, or %
// units. rem and em are multiplied by baseFontSize (DefaultBaseFontSize
// when baseFontSize is zero or negative); percentages pass through as
// unitless numbers. The second return value is false when the input cannot
// be parsed.
func ParseUnitValue(raw any, baseFontSize float64) (float64, bool) {
	if baseFontSize <= 0 {
		baseFontSize = DefaultBaseFontSize
	}

	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return parseUnitString(v, baseFontSize)
	default:
		return 0, false
	}
}

func parseUnitString(s string, baseFontSize float64) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "rem"):
		s = strings.TrimSuffix(s, "rem")
		multiplier = baseFontSize
	case strings.HasSuffix(s, "em"):
		s = strings.TrimSuffix(s, "em")
		multiplier = baseFontSize
	case strings.HasSuffix(s, "%"):
		// Percentages have no absolute-pixel meaning without a reference
		// box, so the numeric value passes through unchanged.
		s = strings.TrimSuffix(s, "%")
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n * multiplier, true
}
