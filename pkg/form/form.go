// Package form holds the state of one calculator screen: the raw text of every
// input, and the view computed from it. Every change recomputes the full result.
package form

import (
	"context"
	"math"

	"github.com/aretw0/tempera"
	"github.com/aretw0/tempera/pkg/calculator"
	"github.com/aretw0/tempera/pkg/domain"
)

// View is what the screen displays after a calculation.
type View struct {
	Fields             domain.Fields    `json:"fields"`
	Hot                int64            `json:"hot"`
	Coolant            int64            `json:"coolant"`
	Total              int64            `json:"total"`
	CoolantLabel       string           `json:"coolant_label"`
	ActiveCoolantField string           `json:"active_coolant_field"`
	Result             domain.MixResult `json:"result"`
}

// Form is the input snapshot of a calculator screen plus its last computed View.
// It is not safe for concurrent use; each session or request owns its own Form.
type Form struct {
	calc   *tempera.Calculator
	fields domain.Fields
	view   View
}

// New creates a form with the given initial fields and computes once, so a result
// is available before the user touches anything.
func New(ctx context.Context, calc *tempera.Calculator, initial domain.Fields) *Form {
	if calc == nil {
		calc = tempera.New()
	}
	f := &Form{calc: calc, fields: initial}
	f.recompute(ctx)
	return f
}

// Fields returns the current raw input snapshot.
func (f *Form) Fields() domain.Fields {
	return f.fields
}

// View returns the view of the last calculation.
func (f *Form) View() View {
	return f.view
}

// Mode returns the active coolant mode.
func (f *Form) Mode() domain.Mode {
	return domain.ParseMode(f.fields.Mode)
}

// Set changes one field and recomputes.
// Changing "mode" goes through SetMode so the active coolant field follows.
func (f *Form) Set(ctx context.Context, name, value string) (View, error) {
	if name == domain.FieldMode {
		return f.SetMode(ctx, domain.ParseMode(value)), nil
	}
	if err := f.fields.Set(name, value); err != nil {
		return f.view, err
	}
	return f.recompute(ctx), nil
}

// SetMode switches the coolant and recomputes immediately with the newly active
// coolant temperature, without waiting for another edit.
func (f *Form) SetMode(ctx context.Context, mode domain.Mode) View {
	f.fields.Mode = string(mode)
	return f.recompute(ctx)
}

// Apply replaces every field at once and recomputes.
func (f *Form) Apply(ctx context.Context, fields domain.Fields) View {
	f.fields = fields
	return f.recompute(ctx)
}

// Refresh recomputes from the current snapshot.
func (f *Form) Refresh(ctx context.Context) View {
	return f.recompute(ctx)
}

func (f *Form) recompute(ctx context.Context) View {
	res := f.calc.Calculate(ctx, calculator.Params(f.fields))
	f.view = NewView(f.fields, res)
	return f.view
}

// NewView projects a result onto the display.
func NewView(fields domain.Fields, res domain.MixResult) View {
	return View{
		Fields:             fields,
		Hot:                RoundHalfUp(res.HotMass),
		Coolant:            RoundHalfDown(res.CoolantMass),
		Total:              RoundHalfUp(res.HotMass + res.CoolantMass),
		CoolantLabel:       res.Mode.CoolantLabel(),
		ActiveCoolantField: res.Mode.CoolantField(),
		Result:             res,
	}
}

// RoundHalfUp rounds to the nearest integer, ties towards +Inf.
func RoundHalfUp(v float64) int64 {
	return toInt(math.Floor(v + 0.5))
}

// RoundHalfDown rounds to the nearest integer, ties towards -Inf.
// The coolant uses it so that an exact 312.5 / 187.5 split shows as 313 + 187 = 500.
func RoundHalfDown(v float64) int64 {
	return toInt(math.Ceil(v - 0.5))
}

func toInt(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}
