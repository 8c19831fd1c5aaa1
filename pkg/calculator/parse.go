package calculator

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/tempera/pkg/domain"
)

// leadingNumber matches the longest decimal number at the start of a string,
// the same prefix a browser's parseFloat would accept.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseNumber reads a number from user-typed text.
//
// It is deliberately forgiving: leading whitespace is skipped, trailing garbage is
// ignored ("12abc" is 12), and anything that does not start with a number, including
// the empty string and NaN, yields 0. A half-typed field must never break the view.
func ParseNumber(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}

	switch strings.TrimLeft(m, "+-") {
	case "Infinity":
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Only an exponent overflow gets here; ParseFloat already returns ±Inf for it.
		if math.IsInf(v, 0) {
			return v
		}
		return 0
	}
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// Params converts the raw fields to calculation inputs.
func Params(f domain.Fields) domain.InputParameters {
	return domain.InputParameters{
		Total:     ParseNumber(f.Total),
		Target:    ParseNumber(f.Target),
		Hot:       ParseNumber(f.Hot),
		Mode:      domain.ParseMode(f.Mode),
		ColdWater: ParseNumber(f.ColdWater),
		IceStart:  ParseNumber(f.IceStart),
	}
}
