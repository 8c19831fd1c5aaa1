package domain

import (
	"fmt"
	"strings"
)

// Mode selects the coolant mixed into the hot liquid.
type Mode string

const (
	// ModeWater mixes cold water into the hot liquid (WATER_COOLANT).
	ModeWater Mode = "water"
	// ModeIce mixes ice, including its phase change (ICE_COOLANT).
	ModeIce Mode = "ice"
)

// ParseMode maps free text to a Mode.
// Anything that is not "ice" is treated as water, matching the selector of the web page.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ice", "ice_coolant":
		return ModeIce
	default:
		return ModeWater
	}
}

// ParseModeStrict is like ParseMode but rejects unknown text.
// Used by command surfaces that want to tell the user about a typo.
func ParseModeStrict(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ice", "ice_coolant":
		return ModeIce, nil
	case "water", "water_coolant", "":
		return ModeWater, nil
	default:
		return ModeWater, fmt.Errorf("%w: %q (expected water or ice)", ErrUnknownMode, s)
	}
}

// CoolantLabel is the human-readable name of the coolant shown next to its mass.
func (m Mode) CoolantLabel() string {
	if m == ModeIce {
		return "2. Ice cubes"
	}
	return "2. Cold water"
}

// CoolantField is the name of the coolant temperature field that is active in this mode.
func (m Mode) CoolantField() string {
	if m == ModeIce {
		return FieldIceStart
	}
	return FieldColdWater
}

func (m Mode) String() string {
	return string(m)
}
