package domain

// Emphasis tells a renderer how to present the value of a Row.
// It carries no meaning for the calculation itself.
type Emphasis string

const (
	EmphasisNone      Emphasis = ""
	EmphasisHighlight Emphasis = "highlight"
	EmphasisStrong    Emphasis = "strong"
)

// Row is one formatted line of a derivation step: literal text followed by an optional value.
type Row struct {
	Text     string   `json:"text"`
	Value    string   `json:"value,omitempty"`
	Emphasis Emphasis `json:"emphasis,omitempty"`
}

// Plain returns the row without presentation hints.
func (r Row) Plain() string {
	return r.Text + r.Value
}

// Step is a titled group of rows.
type Step struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Trace is the ordered derivation of a result.
type Trace []Step

// Add appends a step built from the given rows.
func (t *Trace) Add(title string, rows ...Row) {
	*t = append(*t, Step{Title: title, Rows: rows})
}

// Text builds a row without an emphasised value.
func Text(text string) Row {
	return Row{Text: text}
}

// Highlight builds a row whose value is a key intermediate result.
func Highlight(text, value string) Row {
	return Row{Text: text, Value: value, Emphasis: EmphasisHighlight}
}

// Strong builds a row whose value is a fixed quantity worth pointing out.
func Strong(text, value string) Row {
	return Row{Text: text, Value: value, Emphasis: EmphasisStrong}
}
