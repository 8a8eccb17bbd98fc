package netfile

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a mass or charge number the way generated sources
// spell it: shortest round-trip digits, always with a fractional part, and
// exponent notation below 1e-4 or from 1e16 up (4 -> "4.0", 1e16 -> "1e+16").
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
