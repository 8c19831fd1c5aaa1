package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/tempera"
	"github.com/aretw0/tempera/internal/presentation/trace"
	"github.com/aretw0/tempera/internal/presentation/tui"
	"github.com/aretw0/tempera/pkg/form"
	"github.com/aretw0/tempera/pkg/runner"
	"github.com/muesli/termenv"
)

// SessionOptions configures an interactive session.
type SessionOptions struct {
	GlobalOptions
	JSON bool // NDJSON in and out
	// Plain disables the banner and markdown rendering. It is implied when
	// Stdout is not a terminal.
	Plain bool
}

// RunSession executes one interactive calculator session on Stdin/Stdout.
func RunSession(opts SessionOptions) error {
	app, err := NewApp(opts.GlobalOptions)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	plain := opts.Plain || !IsTerminal(os.Stdout)
	handler := newHandler(os.Stdin, os.Stdout, opts.JSON, plain)
	if !opts.JSON && !plain {
		tui.PrintBanner(os.Stdout, tempera.Version)
	}

	r := runner.NewRunner(
		runner.WithLogger(app.Logger),
		runner.WithCalculator(app.Calculator("cli")),
		runner.WithDefaults(app.Config.Defaults),
		runner.WithInputHandler(handler),
	)

	runErr := r.Run(sigCtx)
	app.Logger.Debug("session finished", "err", runErr)

	if sigCtx.Signal() != nil && !opts.JSON {
		fmt.Fprintln(os.Stdout)
		printSystemMessage(os.Stdout, "Interrupted.")
	}
	return handleExecutionError(runErr)
}

// newHandler picks the IO strategy of a session.
func newHandler(in io.Reader, out io.Writer, jsonMode, plain bool) runner.IOHandler {
	if jsonMode {
		return runner.NewJSONHandler(in, out)
	}
	if plain {
		return runner.NewTextHandler(in, out, runner.WithTextHandlerFormatter(func(v form.View) string {
			return trace.TextView(v, termenv.Ascii)
		}))
	}
	return runner.NewTextHandler(in, out, runner.WithTextHandlerRenderer(tui.NewRenderer()))
}

// handleExecutionError maps interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
