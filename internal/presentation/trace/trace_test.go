package trace

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/form"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func scenarioAView() form.View {
	f := form.New(context.Background(), nil, domain.Fields{
		Total: "500", Target: "60", Hot: "90", Mode: "water", ColdWater: "10",
	})
	return f.View()
}

func TestMarkdown(t *testing.T) {
	tr := domain.Trace{}
	tr.Add("2. Energy balance ice (absorbed)",
		domain.Text("a) Warm up: 21.0 J"),
		domain.Strong("b) Melt: ", "334 J"),
		domain.Highlight("Sum: ", "375.9 J/g"),
	)

	got := Markdown(tr)

	assert.Contains(t, got, "### 2. Energy balance ice (absorbed)\n")
	assert.Contains(t, got, "- a) Warm up: 21.0 J\n")
	assert.Contains(t, got, "- b) Melt: **334 J**\n")
	assert.Contains(t, got, "- Sum: `375.9 J/g`\n")
}

func TestMarkdown_EscapesFormulaText(t *testing.T) {
	got := Markdown(scenarioAView().Result.Trace)

	assert.Contains(t, got, `m\_hot = 500 \* 50.0 / 80.0`)
	assert.Contains(t, got, "m\\_hot = `312.5 g`")
}

func TestMarkdownView(t *testing.T) {
	got := MarkdownView(scenarioAView())

	assert.Contains(t, got, "| 1. Hot liquid | 313 |")
	assert.Contains(t, got, "| 2. Cold water | 187 |")
	assert.Contains(t, got, "| Total | 500 |")
	assert.Contains(t, got, "### 1. Temperature differences")
}

func TestText_AsciiHasNoEscapes(t *testing.T) {
	got := TextView(scenarioAView(), termenv.Ascii)

	assert.NotContains(t, got, "\x1b[")
	assert.Contains(t, got, "1. Temperature differences\n")
	assert.Contains(t, got, "   ΔT_hot = 90 - 60 = 30.0 K\n")
	assert.Contains(t, got, "   m_hot = 312.5 g\n")

	lines := strings.Split(got, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "1. Hot liquid"))
	assert.True(t, strings.HasSuffix(lines[0], "313 g"))
	assert.True(t, strings.HasSuffix(lines[1], "187 g"))
	assert.True(t, strings.HasSuffix(lines[2], "500 g"))
}

func TestText_ColoursHighlights(t *testing.T) {
	got := Text(scenarioAView().Result.Trace, termenv.TrueColor)

	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "30.0 K")
}
