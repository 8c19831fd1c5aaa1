package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for calculations.
type Metrics struct {
	Calculations *prometheus.CounterVec
	Degenerate   *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tempera_calculations_total",
				Help: "Total number of mix calculations",
			},
			[]string{"mode", "source"},
		),
		Degenerate: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tempera_degenerate_calculations_total",
				Help: "Calculations whose denominator was zero and defaulted to zero masses",
			},
			[]string{"mode"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tempera_calculation_duration_seconds",
				Help:    "Duration of mix calculations",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
			},
			[]string{"mode"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Calculations, m.Degenerate, m.Duration)
	}
	return m
}

// Hooks returns lifecycle hooks that record every calculation.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCalculate: m.observe,
	}
}

func (m *Metrics) observe(_ context.Context, e *domain.CalculationEvent) {
	mode := e.Mode.String()
	m.Calculations.WithLabelValues(mode, e.Source).Inc()
	if e.Degenerate {
		m.Degenerate.WithLabelValues(mode).Inc()
	}
	m.Duration.WithLabelValues(mode).Observe(e.Duration.Seconds())
}

// LoggingHooks returns hooks that log every calculation at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCalculate: func(ctx context.Context, e *domain.CalculationEvent) {
			logger.DebugContext(ctx, "calculation",
				"source", e.Source,
				"mode", e.Mode,
				"degenerate", e.Degenerate,
				"duration", e.Duration,
			)
		},
	}
}

// Chain combines several hooks into one; each callback runs in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCalculate: func(ctx context.Context, e *domain.CalculationEvent) {
			for _, h := range hooks {
				if h.OnCalculate != nil {
					h.OnCalculate(ctx, e)
				}
			}
		},
	}
}
