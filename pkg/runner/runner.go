package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/tempera"
	"github.com/aretw0/tempera/internal/presentation/trace"
	"github.com/aretw0/tempera/pkg/config"
	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/form"
	"github.com/muesli/termenv"
)

// Runner handles the interactive calculator session using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Calculator performs the computation. If nil, tempera.New() is used.
	Calculator *tempera.Calculator

	// Defaults are the fields the session starts with and returns to on reset.
	Defaults domain.Fields
}

// NewRunner creates a new Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Defaults: domain.DefaultFields(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run renders the start-up result and then processes commands until the
// input ends, the user exits or ctx is cancelled.
// End of input and an explicit exit both return nil.
func (r *Runner) Run(ctx context.Context) error {
	handler := r.resolveHandler()
	logger := r.resolveLogger()

	f := form.New(ctx, r.Calculator, r.Defaults)
	if err := handler.Output(ctx, f.View()); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	for {
		cmd, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("input closed")
				return nil
			}
			return err
		}
		logger.Debug("command", "kind", cmd.Kind, "field", cmd.Field, "value", cmd.Value)

		view, done, err := r.dispatch(ctx, f, handler, cmd)
		if done {
			return nil
		}
		if err != nil {
			if outErr := handler.SystemOutput(ctx, fmt.Sprintf("Error: %v", err)); outErr != nil {
				return fmt.Errorf("output error: %w", outErr)
			}
			continue
		}
		if view == nil {
			continue
		}
		if err := handler.Output(ctx, *view); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
}

// dispatch applies cmd to the form. A nil view means nothing needs rendering.
func (r *Runner) dispatch(ctx context.Context, f *form.Form, handler IOHandler, cmd Command) (*form.View, bool, error) {
	switch cmd.Kind {
	case CommandExit:
		return nil, true, nil
	case CommandHelp:
		return nil, false, handler.SystemOutput(ctx, HelpText)
	case CommandShow:
		v := f.View()
		return &v, false, nil
	case CommandTrace:
		return nil, false, handler.SystemOutput(ctx, trace.Text(f.View().Result.Trace, termenv.Ascii))
	case CommandReset:
		v := f.Apply(ctx, r.Defaults)
		return &v, false, nil
	case CommandSet:
		v, err := f.Set(ctx, cmd.Field, cmd.Value)
		if err != nil {
			return nil, false, err
		}
		return &v, false, nil
	case CommandApply:
		fields, err := config.DecodeFields(cmd.Fields, f.Fields())
		if err != nil {
			return nil, false, err
		}
		v := f.Apply(ctx, fields)
		return &v, false, nil
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Kind)
	}
}

func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	return NewTextHandler(os.Stdin, os.Stdout)
}

func (r *Runner) resolveLogger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
