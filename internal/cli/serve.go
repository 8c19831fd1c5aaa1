package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/tempera/pkg/adapters/http"
)

// shutdownTimeout bounds graceful shutdown of the servers.
const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	GlobalOptions
	Port string // overrides the configured port when set
}

// RunServe starts the HTTP server and blocks until SIGINT/SIGTERM.
func RunServe(opts ServeOptions) error {
	app, err := NewApp(opts.GlobalOptions)
	if err != nil {
		return err
	}
	port := app.Config.Port
	if opts.Port != "" {
		port = opts.Port
	}

	handler := httpAdapter.NewHandler(
		httpAdapter.WithCalculator(app.Calculator("http")),
		httpAdapter.WithDefaults(app.Config.Defaults),
		httpAdapter.WithGatherer(app.Registry),
		httpAdapter.WithLogger(app.Logger),
	)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("Starting Tempera Server on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-sigCtx.Done():
		fmt.Printf("\nStart shutdown... Signal: %v\n", sigCtx.Signal())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			app.Logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		fmt.Println("Tempera Server stopped gracefully")
		return nil
	}
}
