package runner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
)

// DefaultMaxInputSize bounds one input line, in bytes.
const DefaultMaxInputSize = 4096

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

type inputLimits struct {
	MaxInputSize int `env:"TEMPERA_MAX_INPUT_SIZE" envDefault:"4096"`
}

// MaxInputSize is DefaultMaxInputSize unless TEMPERA_MAX_INPUT_SIZE holds a positive integer.
func MaxInputSize() int {
	var l inputLimits
	if err := env.Parse(&l); err != nil || l.MaxInputSize <= 0 {
		return DefaultMaxInputSize
	}
	return l.MaxInputSize
}

// SanitizeInput prepares one line of user input for parsing.
// Oversized lines and invalid UTF-8 are rejected rather than repaired. Tabs and line
// breaks become spaces, every other control character (ESC, NUL, BEL...) is dropped,
// so nothing typed can reach the terminal or the logs as an escape sequence.
func SanitizeInput(input string) (string, error) {
	if limit := MaxInputSize(); len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, input), nil
}
