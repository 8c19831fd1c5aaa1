package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/tempera/internal/presentation/trace"
	"github.com/aretw0/tempera/internal/presentation/tui"
	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/form"
	"github.com/muesli/termenv"
)

// Output formats understood by RunCalc.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// CalcOptions configures a one-shot calculation.
type CalcOptions struct {
	GlobalOptions
	// Fields overrides the configured defaults; empty values are ignored.
	Fields domain.Fields
	Format string
}

// RunCalc computes once and writes the view to out.
func RunCalc(ctx context.Context, opts CalcOptions, out io.Writer) error {
	app, err := NewApp(opts.GlobalOptions)
	if err != nil {
		return err
	}
	if _, err := domain.ParseModeStrict(opts.Fields.Mode); err != nil {
		return err
	}

	v := form.New(ctx, app.Calculator("calc"), app.Defaults(opts.Fields)).View()
	return writeView(out, v, opts.Format, isTerminalWriter(out))
}

func writeView(out io.Writer, v form.View, format string, tty bool) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		profile := termenv.Ascii
		if tty {
			profile = termenv.ColorProfile()
		}
		_, err := io.WriteString(out, trace.TextView(v, profile))
		return err
	case FormatMarkdown:
		md := trace.MarkdownView(v)
		if tty {
			if rendered, err := tui.NewRenderer()(md); err == nil {
				md = rendered
			}
		}
		_, err := io.WriteString(out, md)
		return err
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q (expected text, markdown or json)", format)
	}
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}
