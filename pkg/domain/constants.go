package domain

// Physical constants used by the ice model.
const (
	// SpecificHeatWater is the specific heat of liquid water in J/(g*K).
	SpecificHeatWater = 4.18
	// SpecificHeatIce is the specific heat of ice in J/(g*K).
	SpecificHeatIce = 2.1
	// LatentHeatFusion is the energy needed to melt one gram of ice at 0°C, in J/g.
	LatentHeatFusion = 334.0
	// MeltingPoint of water in °C.
	MeltingPoint = 0.0
)

// Field names for mapstructure, JSON and the interactive command surface.
const (
	FieldTotal     = "total"
	FieldTarget    = "target"
	FieldHot       = "hot"
	FieldMode      = "mode"
	FieldColdWater = "cold_water"
	FieldIceStart  = "ice_start"
)

// NumericFields lists the fields that hold numbers, in display order.
var NumericFields = []string{FieldTotal, FieldTarget, FieldHot, FieldColdWater, FieldIceStart}
