package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCalculate(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		wantHot     int64
		wantCoolant int64
		wantField   string
	}{
		{"defaults", nil, 313, 187, domain.FieldColdWater},
		{"string arguments", map[string]any{"hot": "85"}, 333, 167, domain.FieldColdWater},
		{"ice", map[string]any{"mode": "ice", "target": "5", "ice_start": "-10"}, 257, 243, domain.FieldIceStart},
		{"numbers are accepted", map[string]any{"total": 1000}, 625, 375, domain.FieldColdWater},
	}

	s := NewServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := s.handleCalculate(context.Background(), mcp.CallToolRequest{}, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHot, v.Hot)
			assert.Equal(t, tt.wantCoolant, v.Coolant)
			assert.Equal(t, tt.wantField, v.ActiveCoolantField)
		})
	}
}

func TestHandleCalculate_UnknownArgument(t *testing.T) {
	_, err := NewServer().handleCalculate(context.Background(), mcp.CallToolRequest{}, map[string]any{"flavour": "mint"})
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestHandleCalculate_ServerDefaults(t *testing.T) {
	s := NewServer(WithDefaults(domain.Fields{Mode: "ice", Target: "5", IceStart: "-10"}))
	v, err := s.handleCalculate(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2. Ice cubes", v.CoolantLabel)
	assert.Equal(t, int64(243), v.Coolant)
}

func TestHandleExplain(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Name = "explain_mix"
	req.Params.Arguments = map[string]any{"hot": "90"}

	res, err := NewServer().handleExplain(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "| 1. Hot liquid | 313 |")
	assert.Contains(t, text.Text, "### 1. Temperature differences")
}

func TestHandleExplain_UnknownArgument(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"flavour": "mint"}

	res, err := NewServer().handleExplain(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestReadConstants(t *testing.T) {
	contents, err := NewServer().readConstants(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, ConstantsURI, text.URI)

	var c Constants
	require.NoError(t, json.Unmarshal([]byte(text.Text), &c))
	assert.Equal(t, 4.18, c.SpecificHeatWater)
	assert.Equal(t, 2.1, c.SpecificHeatIce)
	assert.Equal(t, 334.0, c.LatentHeatFusion)
	assert.Equal(t, 0.0, c.MeltingPoint)
}
