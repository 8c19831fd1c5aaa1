package domain

import "fmt"

// InputParameters are the numeric inputs of one mixing calculation.
// Both coolant temperatures are carried; Mode decides which one is used.
type InputParameters struct {
	Total     float64 `json:"total"`      // target mass of the mix, in g
	Target    float64 `json:"target"`     // °C
	Hot       float64 `json:"hot"`        // °C
	Mode      Mode    `json:"mode"`       //
	ColdWater float64 `json:"cold_water"` // °C, water mode only
	IceStart  float64 `json:"ice_start"`  // °C, ice mode only
}

// CoolantTemp returns the starting temperature of the active coolant.
func (p InputParameters) CoolantTemp() float64 {
	if p.Mode == ModeIce {
		return p.IceStart
	}
	return p.ColdWater
}

// Fields is the raw text a user typed into the six inputs.
// It is the only mutable state of an interactive session.
type Fields struct {
	Total     string `json:"total" yaml:"total" mapstructure:"total"`
	Target    string `json:"target" yaml:"target" mapstructure:"target"`
	Hot       string `json:"hot" yaml:"hot" mapstructure:"hot"`
	Mode      string `json:"mode" yaml:"mode" mapstructure:"mode"`
	ColdWater string `json:"cold_water" yaml:"cold_water" mapstructure:"cold_water"`
	IceStart  string `json:"ice_start" yaml:"ice_start" mapstructure:"ice_start"`
}

// DefaultFields mirrors the values the calculator page ships with.
func DefaultFields() Fields {
	return Fields{
		Total:     "500",
		Target:    "60",
		Hot:       "90",
		Mode:      string(ModeWater),
		ColdWater: "10",
		IceStart:  "-18",
	}
}

// Get returns the raw value of the named field.
func (f Fields) Get(name string) (string, error) {
	switch name {
	case FieldTotal:
		return f.Total, nil
	case FieldTarget:
		return f.Target, nil
	case FieldHot:
		return f.Hot, nil
	case FieldMode:
		return f.Mode, nil
	case FieldColdWater:
		return f.ColdWater, nil
	case FieldIceStart:
		return f.IceStart, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Set replaces the raw value of the named field.
func (f *Fields) Set(name, value string) error {
	switch name {
	case FieldTotal:
		f.Total = value
	case FieldTarget:
		f.Target = value
	case FieldHot:
		f.Hot = value
	case FieldMode:
		f.Mode = value
	case FieldColdWater:
		f.ColdWater = value
	case FieldIceStart:
		f.IceStart = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Overlay returns f with every non-empty field of o applied on top.
func (f Fields) Overlay(o Fields) Fields {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return Fields{
		Total:     pick(f.Total, o.Total),
		Target:    pick(f.Target, o.Target),
		Hot:       pick(f.Hot, o.Hot),
		Mode:      pick(f.Mode, o.Mode),
		ColdWater: pick(f.ColdWater, o.ColdWater),
		IceStart:  pick(f.IceStart, o.IceStart),
	}
}
