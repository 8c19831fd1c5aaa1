package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/tempera"
	"github.com/aretw0/tempera/internal/logging"
	"github.com/aretw0/tempera/pkg/config"
	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/term"
)

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Debug      bool
}

// App is the resolved runtime of one command: configuration, logger and metrics.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Metrics  *observability.Metrics
}

// NewApp loads the configuration and builds the shared services.
func NewApp(opts GlobalOptions) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	cfg.Debug = cfg.Debug || opts.Debug

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := &App{
		Config:   cfg,
		Logger:   logging.ForDebug(cfg.Debug),
		Registry: reg,
		Metrics:  observability.NewMetrics(reg),
	}
	app.Logger.Debug("config loaded", "path", opts.ConfigPath, "port", cfg.Port, "defaults", cfg.Defaults)
	return app, nil
}

// Calculator returns a calculator tagged with source whose calculations are
// counted in the app metrics and logged at debug level.
func (a *App) Calculator(source string) *tempera.Calculator {
	hooks := observability.Chain(a.Metrics.Hooks(), observability.LoggingHooks(a.Logger))
	return tempera.New(
		tempera.WithSource(source),
		tempera.WithLogger(a.Logger),
		tempera.WithLifecycleHooks(hooks),
	)
}

// Defaults returns the configured start-up fields with overrides applied on top.
func (a *App) Defaults(overrides domain.Fields) domain.Fields {
	return a.Config.Defaults.Overlay(overrides)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
