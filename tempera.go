package tempera

import (
	"context"
	_ "embed"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/tempera/pkg/calculator"
	"github.com/aretw0/tempera/pkg/domain"
)

// Version is the release of this module, embedded from the VERSION file.
//
//go:embed VERSION
var Version string

// Calculator is the high-level entry point for the tempera library.
// It runs the pure models from pkg/calculator and reports every calculation
// to the configured logger and lifecycle hooks.
type Calculator struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	source string
	now    func() time.Time
}

// Option defines a functional option for configuring the Calculator.
type Option func(*Calculator)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Calculator) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithSource names the adapter driving the calculator (cli, http, mcp).
// It is attached to log lines and calculation events.
func WithSource(source string) Option {
	return func(c *Calculator) {
		c.source = source
	}
}

// New initializes a Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		source: "lib",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Calculate runs the model selected by p.Mode. It never fails.
func (c *Calculator) Calculate(ctx context.Context, p domain.InputParameters) domain.MixResult {
	start := c.now()
	res := calculator.Calculate(p)
	elapsed := c.now().Sub(start)

	if res.Degenerate {
		c.logger.Debug("Degenerate mix, masses defaulted to zero",
			"source", c.source, "mode", res.Mode, "hot", p.Hot, "target", p.Target, "coolant", p.CoolantTemp())
	}
	c.logger.Debug("Calculated mix",
		"source", c.source,
		"mode", res.Mode,
		"hot_mass", res.HotMass,
		"coolant_mass", res.CoolantMass,
		"total_mass", res.TotalMass,
	)

	if c.hooks.OnCalculate != nil {
		c.hooks.OnCalculate(ctx, &domain.CalculationEvent{
			Timestamp:  start,
			Source:     c.source,
			Mode:       res.Mode,
			Degenerate: res.Degenerate,
			Duration:   elapsed,
		})
	}
	return res
}

// CalculateFields parses raw field text and calculates.
// Unparsable numbers read as 0.
func (c *Calculator) CalculateFields(ctx context.Context, f domain.Fields) domain.MixResult {
	return c.Calculate(ctx, calculator.Params(f))
}
