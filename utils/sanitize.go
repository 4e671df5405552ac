package utils

import (
	"strconv"
	"strings"
)

var currencyGlyphs = []string{"₹", "$", "Rs.", "Rs", "INR"}

// SanitizeAmount converts a raw cell value into a float64. It tolerates
// currency glyphs, thousands separators, surrounding whitespace and the
// usual statement placeholders. Anything unparsable becomes 0.0 so that one
// bad cell never aborts a statement.
func SanitizeAmount(value string) float64 {
	for _, g := range currencyGlyphs {
		value = strings.ReplaceAll(value, g, "")
	}
	value = strings.ReplaceAll(value, ",", "")
	value = strings.TrimSpace(value)

	switch {
	case value == "", value == "-", value == "--":
		return 0.0
	case strings.EqualFold(value, "nan"):
		return 0.0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0.0
	}
	return f
}
