package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/tempera"
	"github.com/aretw0/tempera/internal/logging"
	"github.com/aretw0/tempera/internal/presentation/trace"
	"github.com/aretw0/tempera/pkg/config"
	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/form"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ConstantsURI is the resource holding the physical constants of the calculation.
const ConstantsURI = "tempera://constants"

// Constants lists the physical constants behind every calculation.
type Constants struct {
	SpecificHeatWater float64 `json:"specific_heat_water" jsonschema_description:"J/(g*K)"`
	SpecificHeatIce   float64 `json:"specific_heat_ice" jsonschema_description:"J/(g*K)"`
	LatentHeatFusion  float64 `json:"latent_heat_fusion" jsonschema_description:"J/g"`
	MeltingPoint      float64 `json:"melting_point" jsonschema_description:"°C"`
}

// Server exposes the calculator as an MCP server.
type Server struct {
	calc      *tempera.Calculator
	defaults  domain.Fields
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithCalculator sets the calculator behind the tools.
func WithCalculator(calc *tempera.Calculator) Option {
	return func(s *Server) {
		s.calc = calc
	}
}

// WithDefaults sets the fields used for arguments the caller leaves out.
func WithDefaults(fields domain.Fields) Option {
	return func(s *Server) {
		s.defaults = domain.DefaultFields().Overlay(fields)
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		calc:      tempera.New(tempera.WithSource("mcp")),
		defaults:  domain.DefaultFields(),
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("tempera-mcp", strings.TrimSpace(tempera.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func fieldOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString(domain.FieldTotal, mcp.Description("Total amount of the mix in g (default 500)")),
		mcp.WithString(domain.FieldTarget, mcp.Description("Target temperature in °C")),
		mcp.WithString(domain.FieldHot, mcp.Description("Temperature of the hot liquid in °C")),
		mcp.WithString(domain.FieldMode, mcp.Description("Coolant to mix in"), mcp.Enum("water", "ice")),
		mcp.WithString(domain.FieldColdWater, mcp.Description("Cold water temperature in °C (water mode)")),
		mcp.WithString(domain.FieldIceStart, mcp.Description("Ice temperature in °C (ice mode)")),
	}
}

func (s *Server) registerTools() {
	// TOOL: calculate_mix
	calcOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Compute how much hot liquid and coolant (cold water or ice) to combine to reach a target temperature. Omitted fields use the server defaults; unparsable numbers count as 0."),
		mcp.WithOutputSchema[form.View](),
	}, fieldOptions()...)
	s.mcpServer.AddTool(mcp.NewTool("calculate_mix", calcOpts...), mcp.NewStructuredToolHandler(s.handleCalculate))

	// TOOL: explain_mix
	explainOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Like calculate_mix, but returns the result and its step-by-step derivation as markdown."),
	}, fieldOptions()...)
	s.mcpServer.AddTool(mcp.NewTool("explain_mix", explainOpts...), s.handleExplain)
}

func (s *Server) view(ctx context.Context, args map[string]any) (form.View, error) {
	fields, err := config.DecodeFields(args, s.defaults)
	if err != nil {
		return form.View{}, err
	}
	return form.New(ctx, s.calc, fields).View(), nil
}

func (s *Server) handleCalculate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (form.View, error) {
	v, err := s.view(ctx, args)
	if err != nil {
		s.logger.Warn("MCP calculate_mix: invalid arguments", "error", err)
		return form.View{}, fmt.Errorf("invalid arguments: %w", err)
	}
	return v, nil
}

func (s *Server) handleExplain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, err := s.view(ctx, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	return mcp.NewToolResultText(trace.MarkdownView(v)), nil
}

func constants() Constants {
	return Constants{
		SpecificHeatWater: domain.SpecificHeatWater,
		SpecificHeatIce:   domain.SpecificHeatIce,
		LatentHeatFusion:  domain.LatentHeatFusion,
		MeltingPoint:      domain.MeltingPoint,
	}
}

func (s *Server) registerResources() {
	// EXPOSE: tempera://constants
	s.mcpServer.AddResource(mcp.NewResource(ConstantsURI, "Physical constants",
		mcp.WithResourceDescription("Specific heats, latent heat of fusion and melting point used by the calculation"),
		mcp.WithMIMEType("application/json"),
	), s.readConstants)
}

func (s *Server) readConstants(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(constants())
	if err != nil {
		return nil, fmt.Errorf("encode constants: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ConstantsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
