package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/tempera/pkg/domain"
)

// CommandKind identifies what a Command does to the session.
type CommandKind string

const (
	CommandSet   CommandKind = "set"   // change one field
	CommandApply CommandKind = "apply" // change several fields at once
	CommandShow  CommandKind = "show"  // render the current view again
	CommandTrace CommandKind = "trace" // print only the derivation
	CommandReset CommandKind = "reset" // restore the start-up fields
	CommandHelp  CommandKind = "help"
	CommandExit  CommandKind = "exit"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingValue   = errors.New("missing value")
)

// Command is one user interaction.
type Command struct {
	Kind   CommandKind
	Field  string         // CommandSet
	Value  string         // CommandSet
	Fields map[string]any // CommandApply, loosely typed as decoded from JSON
}

// fieldAliases maps shorthand typed at the prompt to canonical field names.
var fieldAliases = map[string]string{
	domain.FieldTotal:     domain.FieldTotal,
	"volume":              domain.FieldTotal,
	"vol":                 domain.FieldTotal,
	domain.FieldTarget:    domain.FieldTarget,
	domain.FieldHot:       domain.FieldHot,
	domain.FieldMode:      domain.FieldMode,
	domain.FieldColdWater: domain.FieldColdWater,
	"cold":                domain.FieldColdWater,
	domain.FieldIceStart:  domain.FieldIceStart,
	"ice":                 domain.FieldIceStart,
}

// ParseCommand reads a line typed at the prompt.
//
//	hot 85 | hot=85 | mode ice | show | reset | help | exit
//
// "hot=" clears a field, which then reads as 0.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyCommand
	}

	switch strings.ToLower(line) {
	case "exit", "quit", "q":
		return Command{Kind: CommandExit}, nil
	case "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "show":
		return Command{Kind: CommandShow}, nil
	case "trace":
		return Command{Kind: CommandTrace}, nil
	case "reset":
		return Command{Kind: CommandReset}, nil
	}

	name, value, hasValue := splitAssignment(line)
	field, ok := fieldAliases[strings.ToLower(name)]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q (type 'help' for a list)", ErrUnknownCommand, name)
	}
	if !hasValue {
		return Command{}, fmt.Errorf("%w for %s (use '%s=' to clear it)", ErrMissingValue, field, field)
	}

	if field == domain.FieldMode {
		mode, err := domain.ParseModeStrict(value)
		if err != nil {
			return Command{}, err
		}
		value = mode.String()
	}

	return Command{Kind: CommandSet, Field: field, Value: value}, nil
}

// splitAssignment splits "name=value" or "name value".
func splitAssignment(line string) (name, value string, ok bool) {
	if i := strings.IndexByte(line, '='); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
	}
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:]), true
	}
	return line, "", false
}

// HelpText lists the commands understood by ParseCommand.
const HelpText = `Commands:
  total <g>          total amount of the mix (alias: volume, vol)
  target <°C>        temperature you want to end up with
  hot <°C>           temperature of the hot liquid
  mode water|ice     coolant to mix in
  cold_water <°C>    cold water temperature, water mode (alias: cold)
  ice_start <°C>     ice temperature, ice mode (alias: ice)
  show               print the result again
  trace              print only the derivation
  reset              restore the start-up values
  help               this list
  exit               leave (also: quit, q)
Use "name=value" or "name value"; "name=" clears a field.`
