package trace

import (
	"fmt"
	"strings"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/form"
	"github.com/muesli/termenv"
)

// Colours follow the banner gradient.
const (
	colorTitle     = "#a78bfa"
	colorHighlight = "#f472b6"
)

// Text renders the trace as indented plain text.
// Emphasised values are coloured according to profile; termenv.Ascii yields no escape codes.
func Text(t domain.Trace, profile termenv.Profile) string {
	var b strings.Builder
	for _, step := range t {
		b.WriteString(profile.String(step.Title).Foreground(profile.Color(colorTitle)).Bold().String())
		b.WriteString("\n")
		for _, row := range step.Rows {
			b.WriteString("   ")
			b.WriteString(textRow(row, profile))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func textRow(r domain.Row, profile termenv.Profile) string {
	switch r.Emphasis {
	case domain.EmphasisHighlight:
		return r.Text + profile.String(r.Value).Foreground(profile.Color(colorHighlight)).Bold().String()
	case domain.EmphasisStrong:
		return r.Text + profile.String(r.Value).Bold().String()
	default:
		return r.Text + r.Value
	}
}

// TextView renders the result summary followed by the derivation.
func TextView(v form.View, profile termenv.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %6d g\n", "1. Hot liquid", v.Hot)
	fmt.Fprintf(&b, "%-16s %6d g\n", v.CoolantLabel, v.Coolant)
	fmt.Fprintf(&b, "%-16s %6d g\n", "Total", v.Total)
	b.WriteString("\n")
	b.WriteString(Text(v.Result.Trace, profile))
	return b.String()
}
