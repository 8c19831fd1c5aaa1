package runner

import (
	"context"

	"github.com/aretw0/tempera/pkg/form"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the current view to the user.
	Output(ctx context.Context, view form.View) error

	// Input reads the next command.
	// Malformed input is reported to the user by the handler and never returned;
	// io.EOF ends the session.
	Input(ctx context.Context) (Command, error)

	// SystemOutput presents a meta-message to the user (help, errors, status updates).
	// This is distinct from view rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// ViewFormatter turns a view into the text a TextHandler prints.
type ViewFormatter func(form.View) string
