package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// MixResult is the outcome of one calculation.
// HotMass + CoolantMass == TotalMass always holds; in the degenerate case all are zero.
type MixResult struct {
	Mode        Mode    `json:"mode"`
	HotMass     float64 `json:"hot_mass"`
	CoolantMass float64 `json:"coolant_mass"`
	TotalMass   float64 `json:"total_mass"`
	// Degenerate is set when the governing denominator was zero and the masses defaulted to 0.
	Degenerate bool  `json:"degenerate"`
	Trace      Trace `json:"trace"`
}

func (r MixResult) String() string {
	return fmt.Sprintf(
		"%.1fg hot + %.1fg %s = %.1fg",
		r.HotMass,
		r.CoolantMass,
		r.Mode,
		r.TotalMass,
	)
}

// MarshalJSON writes non-finite masses as null; they arise from inputs such as "Infinity".
func (r MixResult) MarshalJSON() ([]byte, error) {
	type plain MixResult
	return json.Marshal(struct {
		plain
		HotMass     *float64 `json:"hot_mass"`
		CoolantMass *float64 `json:"coolant_mass"`
		TotalMass   *float64 `json:"total_mass"`
	}{
		plain:       plain(r),
		HotMass:     finite(r.HotMass),
		CoolantMass: finite(r.CoolantMass),
		TotalMass:   finite(r.TotalMass),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
