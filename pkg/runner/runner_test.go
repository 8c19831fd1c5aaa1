package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_TextSession(t *testing.T) {
	input := strings.NewReader("hot 85\nbogus\n\nexit\n")
	var out bytes.Buffer

	r := NewRunner(WithInputHandler(NewTextHandler(input, &out)))
	require.NoError(t, r.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "| 1. Hot liquid | 313 |", "start-up result")
	assert.Contains(t, got, "| 1. Hot liquid | 333 |", "after hot 85")
	assert.Contains(t, got, "| 2. Cold water | 167 |")
	assert.Contains(t, got, "Please try again.")
}

func TestRunner_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("mode ice"), &out)))

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "2. Ice cubes")
}

func TestRunner_HelpAndReset(t *testing.T) {
	input := strings.NewReader("total 1000\nhelp\nreset\n")
	var out bytes.Buffer

	r := NewRunner(
		WithInputHandler(NewTextHandler(input, &out)),
		WithDefaults(domain.Fields{Total: "200"}),
	)
	require.NoError(t, r.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "[System] Commands:")
	assert.Contains(t, got, "| Total | 1000 |")
	assert.Equal(t, 2, strings.Count(got, "| Total | 200 |"), "start-up and reset")
}

func TestRunner_CustomFormatter(t *testing.T) {
	var out bytes.Buffer
	h := NewTextHandler(strings.NewReader(""), &out,
		WithTextHandlerFormatter(func(v form.View) string { return "hot=" + v.Fields.Hot }),
		WithTextHandlerRenderer(func(s string) (string, error) { return strings.ToUpper(s), nil }),
	)

	require.NoError(t, NewRunner(WithInputHandler(h)).Run(context.Background()))
	assert.Equal(t, "HOT=90\n> ", out.String())
}

func TestRunner_CancelledContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := NewRunner(WithInputHandler(NewTextHandler(pr, io.Discard)))
	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), sc.Text())
		lines = append(lines, m)
	}
	return lines
}

func TestRunner_JSONSession(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		`{"field": "hot", "value": 85}`,
		`{"mode": "ice"}`,
		`not json`,
		`{"flavour": "mint"}`,
		`{"command": "exit"}`,
	}, "\n"))
	var out bytes.Buffer

	r := NewRunner(WithInputHandler(NewJSONHandler(input, &out)))
	require.NoError(t, r.Run(context.Background()))

	lines := decodeLines(t, out.Bytes())
	require.Len(t, lines, 5)

	assert.EqualValues(t, 313, lines[0]["hot"])
	assert.EqualValues(t, 333, lines[1]["hot"])

	assert.EqualValues(t, 428, lines[2]["hot"])
	assert.EqualValues(t, 72, lines[2]["coolant"])
	assert.Equal(t, "ice_start", lines[2]["active_coolant_field"])

	assert.Contains(t, lines[3]["error"], "invalid JSON")
	assert.Contains(t, lines[4]["message"], "unknown field")
}

func TestDecodeJSONCommand(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
		wantErr  bool
	}{
		{`"hot 70"`, Command{Kind: CommandSet, Field: domain.FieldHot, Value: "70"}, false},
		{`{"field": "target", "value": "5"}`, Command{Kind: CommandSet, Field: domain.FieldTarget, Value: "5"}, false},
		{`{"field": "target", "value": null}`, Command{Kind: CommandSet, Field: domain.FieldTarget, Value: ""}, false},
		{`{"command": "show"}`, Command{Kind: CommandShow}, false},
		{`{"total": 250}`, Command{Kind: CommandApply, Fields: map[string]any{"total": float64(250)}}, false},
		{`{"field": "mode", "value": "steam"}`, Command{}, true},
		{`[1, 2]`, Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := decodeJSONCommand(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestRunner_TraceCommand(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(WithInputHandler(NewTextHandler(strings.NewReader("trace\n"), &out)))

	require.NoError(t, r.Run(context.Background()))
	got := out.String()
	assert.Contains(t, got, "[System] 1. Temperature differences")
	assert.Contains(t, got, "m_hot = 312.5 g")
}
