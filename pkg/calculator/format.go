package calculator

import (
	"math"
	"strconv"
)

// Number formats v with as many digits as needed and no more, as a value typed by the user is echoed.
func Number(v float64) string {
	if s, ok := special(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fixed formats v with exactly n decimals. Halves round away from zero.
func Fixed(v float64, n int) string {
	if s, ok := special(v); ok {
		return s
	}
	scale := math.Pow(10, float64(n))
	if r := math.Round(v*scale) / scale; !math.IsInf(r, 0) && !math.IsNaN(r) {
		v = r
	}
	return strconv.FormatFloat(v, 'f', n, 64)
}

func special(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}
