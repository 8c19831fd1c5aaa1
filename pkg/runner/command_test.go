package runner

import (
	"errors"
	"testing"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
	}{
		{"hot 85", Command{Kind: CommandSet, Field: domain.FieldHot, Value: "85"}},
		{"hot=85", Command{Kind: CommandSet, Field: domain.FieldHot, Value: "85"}},
		{"  target =  5 ", Command{Kind: CommandSet, Field: domain.FieldTarget, Value: "5"}},
		{"Vol 330", Command{Kind: CommandSet, Field: domain.FieldTotal, Value: "330"}},
		{"cold 4", Command{Kind: CommandSet, Field: domain.FieldColdWater, Value: "4"}},
		{"ice=-18", Command{Kind: CommandSet, Field: domain.FieldIceStart, Value: "-18"}},
		{"hot=", Command{Kind: CommandSet, Field: domain.FieldHot, Value: ""}},
		{"hot abc", Command{Kind: CommandSet, Field: domain.FieldHot, Value: "abc"}},
		{"mode ICE", Command{Kind: CommandSet, Field: domain.FieldMode, Value: "ice"}},
		{"mode=water", Command{Kind: CommandSet, Field: domain.FieldMode, Value: "water"}},
		{"show", Command{Kind: CommandShow}},
		{"Trace", Command{Kind: CommandTrace}},
		{"reset", Command{Kind: CommandReset}},
		{"?", Command{Kind: CommandHelp}},
		{"QUIT", Command{Kind: CommandExit}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"", ErrEmptyCommand},
		{"   ", ErrEmptyCommand},
		{"pressure 3", ErrUnknownCommand},
		{"hot", ErrMissingValue},
		{"mode steam", domain.ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}
