// Package trace renders a derivation trace and the result view.
// The calculation produces structured steps; this package decides how they look.
package trace

import (
	"fmt"
	"strings"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/form"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"|", `\|`,
)

// Markdown renders the trace as a markdown document: one heading per step, one list item per row.
// Highlighted values become inline code and strong values bold.
func Markdown(t domain.Trace) string {
	var b strings.Builder
	for i, step := range t {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "### %s\n\n", markdownEscaper.Replace(step.Title))
		for _, row := range step.Rows {
			b.WriteString("- ")
			b.WriteString(markdownRow(row))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func markdownRow(r domain.Row) string {
	text := markdownEscaper.Replace(r.Text)
	switch r.Emphasis {
	case domain.EmphasisHighlight:
		return text + "`" + r.Value + "`"
	case domain.EmphasisStrong:
		return text + "**" + markdownEscaper.Replace(r.Value) + "**"
	default:
		return text + markdownEscaper.Replace(r.Value)
	}
}

// MarkdownView renders the result table followed by the derivation.
func MarkdownView(v form.View) string {
	var b strings.Builder
	b.WriteString("## Result\n\n")
	b.WriteString("| Component | Amount (g) |\n")
	b.WriteString("| --- | ---: |\n")
	fmt.Fprintf(&b, "| 1. Hot liquid | %d |\n", v.Hot)
	fmt.Fprintf(&b, "| %s | %d |\n", v.CoolantLabel, v.Coolant)
	fmt.Fprintf(&b, "| Total | %d |\n", v.Total)
	b.WriteString("\n## Derivation\n\n")
	b.WriteString(Markdown(v.Result.Trace))
	return b.String()
}
