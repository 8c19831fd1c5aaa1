package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/aretw0/tempera/internal/logging"
	"github.com/aretw0/tempera/pkg/adapters/mcp"
)

// MCPOptions configures the MCP server.
type MCPOptions struct {
	GlobalOptions
	Transport string // stdio or sse
	Port      int    // SSE only; 0 uses the configured port
}

// RunMCP starts the MCP server on the chosen transport.
func RunMCP(opts MCPOptions) error {
	app, err := NewApp(opts.GlobalOptions)
	if err != nil {
		return err
	}

	// Stdout carries JSON-RPC on stdio, so the MCP server always logs to Stderr.
	level := slog.LevelInfo
	if app.Config.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	srv := mcp.NewServer(
		mcp.WithCalculator(app.Calculator("mcp")),
		mcp.WithDefaults(app.Config.Defaults),
		mcp.WithLogger(logger),
	)

	switch opts.Transport {
	case "", "stdio":
		log.SetOutput(os.Stderr)
		logger.Info("Starting Tempera MCP Server (Stdio)...")
		return srv.ServeStdio()
	case "sse":
		port := opts.Port
		if port == 0 {
			if port, err = strconv.Atoi(app.Config.Port); err != nil {
				return fmt.Errorf("invalid port %q: %w", app.Config.Port, err)
			}
		}

		sigCtx := NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		logger.Info("Starting Tempera MCP Server (SSE)", "port", port)
		if err := srv.ServeSSE(sigCtx, port); err != nil {
			return err
		}
		logger.Info("MCP Server stopped gracefully")
		return nil
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", opts.Transport)
	}
}
