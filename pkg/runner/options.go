package runner

import (
	"log/slog"

	"github.com/aretw0/tempera"
	"github.com/aretw0/tempera/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithCalculator configures the calculator the session computes with.
func WithCalculator(calc *tempera.Calculator) Option {
	return func(r *Runner) {
		r.Calculator = calc
	}
}

// WithDefaults sets the start-up fields. Empty values keep the built-in defaults.
func WithDefaults(fields domain.Fields) Option {
	return func(r *Runner) {
		r.Defaults = domain.DefaultFields().Overlay(fields)
	}
}
