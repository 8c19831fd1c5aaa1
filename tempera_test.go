package tempera

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Calculate_FiresHook(t *testing.T) {
	var events []*domain.CalculationEvent
	calc := New(
		WithSource("test"),
		WithLifecycleHooks(domain.LifecycleHooks{
			OnCalculate: func(_ context.Context, e *domain.CalculationEvent) {
				events = append(events, e)
			},
		}),
	)

	res := calc.Calculate(context.Background(), domain.InputParameters{
		Total: 500, Target: 60, Hot: 90, Mode: domain.ModeWater, ColdWater: 10,
	})

	assert.InDelta(t, 312.5, res.HotMass, 1e-9)
	require.Len(t, events, 1)
	assert.Equal(t, "test", events[0].Source)
	assert.Equal(t, domain.ModeWater, events[0].Mode)
	assert.False(t, events[0].Degenerate)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestCalculator_Calculate_LogsDegenerate(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	calc := New(WithLogger(logger))

	res := calc.Calculate(context.Background(), domain.InputParameters{
		Total: 500, Target: 60, Hot: 40, Mode: domain.ModeWater, ColdWater: 40,
	})

	assert.True(t, res.Degenerate)
	assert.Contains(t, buf.String(), "Degenerate mix")
}

func TestCalculator_CalculateFields(t *testing.T) {
	calc := New()

	res := calc.CalculateFields(context.Background(), domain.Fields{
		Total: "500", Target: "5", Hot: "90", Mode: "ice", IceStart: "-10", ColdWater: "garbage",
	})

	assert.Equal(t, domain.ModeIce, res.Mode)
	assert.InDelta(t, 500.0, res.HotMass+res.CoolantMass, 1e-9)
	assert.InDelta(t, 242.96, res.CoolantMass, 0.01)
}

func TestVersion_Embedded(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(Version))
}
