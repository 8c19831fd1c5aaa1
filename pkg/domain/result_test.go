package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixResult_MarshalJSON(t *testing.T) {
	r := MixResult{Mode: ModeWater, HotMass: 312.5, CoolantMass: 187.5, TotalMass: 500}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"water","hot_mass":312.5,"coolant_mass":187.5,"total_mass":500,"degenerate":false,"trace":null}`, string(data))
}

func TestMixResult_MarshalJSON_NonFinite(t *testing.T) {
	r := MixResult{Mode: ModeIce, HotMass: math.Inf(1), CoolantMass: math.NaN(), TotalMass: math.Inf(1)}
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Nil(t, m["hot_mass"])
	assert.Nil(t, m["coolant_mass"])
	assert.Equal(t, "ice", m["mode"])
}

func TestFields_SetAndOverlay(t *testing.T) {
	f := DefaultFields()
	require.NoError(t, f.Set(FieldHot, "85"))
	assert.ErrorIs(t, f.Set("flavour", "mint"), ErrUnknownField)

	got := f.Overlay(Fields{Mode: "ice", Target: "5"})
	assert.Equal(t, "85", got.Hot)
	assert.Equal(t, "ice", got.Mode)
	assert.Equal(t, "5", got.Target)
	assert.Equal(t, "500", got.Total)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeIce, ParseMode(" ICE "))
	assert.Equal(t, ModeWater, ParseMode("steam"))

	_, err := ParseModeStrict("steam")
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, "2. Ice cubes", ModeIce.CoolantLabel())
	assert.Equal(t, FieldColdWater, ModeWater.CoolantField())
}
