package form

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/aretw0/tempera"
	"github.com/aretw0/tempera/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioA() domain.Fields {
	return domain.Fields{Total: "500", Target: "60", Hot: "90", Mode: "water", ColdWater: "10", IceStart: "-10"}
}

func TestNew_ComputesAtStartup(t *testing.T) {
	calls := 0
	calc := tempera.New(tempera.WithLifecycleHooks(domain.LifecycleHooks{
		OnCalculate: func(context.Context, *domain.CalculationEvent) { calls++ },
	}))

	f := New(context.Background(), calc, scenarioA())

	assert.Equal(t, 1, calls)
	v := f.View()
	assert.Equal(t, int64(313), v.Hot)
	assert.Equal(t, int64(187), v.Coolant)
	assert.Equal(t, int64(500), v.Total)
	assert.Equal(t, "2. Cold water", v.CoolantLabel)
	assert.Equal(t, domain.FieldColdWater, v.ActiveCoolantField)
}

func TestForm_SetRecomputes(t *testing.T) {
	f := New(context.Background(), nil, scenarioA())

	v, err := f.Set(context.Background(), domain.FieldTotal, "1000")
	require.NoError(t, err)
	assert.Equal(t, int64(625), v.Hot)
	assert.Equal(t, int64(375), v.Coolant)
	assert.Equal(t, "1000", f.Fields().Total)
}

func TestForm_SetUnparsableReadsAsZero(t *testing.T) {
	f := New(context.Background(), nil, scenarioA())

	v, err := f.Set(context.Background(), domain.FieldTotal, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Hot)
	assert.Equal(t, int64(0), v.Coolant)
	assert.Equal(t, int64(0), v.Total)
}

func TestForm_SetUnknownField(t *testing.T) {
	f := New(context.Background(), nil, scenarioA())
	before := f.View()

	_, err := f.Set(context.Background(), "pressure", "1")
	assert.True(t, errors.Is(err, domain.ErrUnknownField))
	assert.Equal(t, before, f.View())
}

func TestForm_ModeSwitchUsesNewlyActiveField(t *testing.T) {
	fields := scenarioA()
	fields.Target = "5"
	f := New(context.Background(), nil, fields)

	// Water mode with cold=10 and target=5: deltaCold is negative, masses are nonsense but computed.
	water := f.View()
	assert.Equal(t, domain.ModeWater, water.Result.Mode)

	ice := f.SetMode(context.Background(), domain.ModeIce)
	assert.Equal(t, domain.ModeIce, ice.Result.Mode)
	assert.Equal(t, "2. Ice cubes", ice.CoolantLabel)
	assert.Equal(t, domain.FieldIceStart, ice.ActiveCoolantField)
	assert.Equal(t, int64(257), ice.Hot)
	assert.Equal(t, int64(243), ice.Coolant)
	assert.Equal(t, int64(500), ice.Total)

	back, err := f.Set(context.Background(), domain.FieldMode, "water")
	require.NoError(t, err)
	assert.Equal(t, water.Hot, back.Hot)
	assert.Equal(t, "2. Cold water", back.CoolantLabel)
}

func TestForm_DegenerateShowsZeros(t *testing.T) {
	fields := scenarioA()
	fields.ColdWater = "90"
	f := New(context.Background(), nil, fields)

	v := f.View()
	assert.True(t, v.Result.Degenerate)
	assert.Equal(t, int64(0), v.Hot)
	assert.Equal(t, int64(0), v.Coolant)
	assert.Equal(t, int64(0), v.Total)
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in       float64
		halfUp   int64
		halfDown int64
	}{
		{312.5, 313, 312},
		{187.5, 188, 187},
		{242.957, 243, 243},
		{257.043, 257, 257},
		{-2.5, -2, -3},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.halfUp, RoundHalfUp(tt.in), "RoundHalfUp(%v)", tt.in)
		assert.Equal(t, tt.halfDown, RoundHalfDown(tt.in), "RoundHalfDown(%v)", tt.in)
	}
	assert.Equal(t, int64(0), RoundHalfUp(math.NaN()))
	assert.Equal(t, int64(math.MaxInt64), RoundHalfUp(math.Inf(1)))
}
