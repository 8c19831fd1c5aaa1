package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/tempera"
	"github.com/aretw0/tempera/internal/logging"
	"github.com/aretw0/tempera/internal/presentation/web"
	"github.com/aretw0/tempera/pkg/config"
	"github.com/aretw0/tempera/pkg/domain"
	"github.com/aretw0/tempera/pkg/form"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed openapi.yaml
var rawSpec []byte

// maxBodySize bounds POST /calculate bodies.
const maxBodySize = 64 << 10

var (
	specOnce sync.Once
	specDoc  *openapi3.T
	specErr  error
)

// Spec loads and validates the embedded OpenAPI document.
func Spec() (*openapi3.T, error) {
	specOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			specErr = fmt.Errorf("load openapi: %w", err)
			return
		}
		if err := doc.Validate(loader.Context); err != nil {
			specErr = fmt.Errorf("validate openapi: %w", err)
			return
		}
		specDoc = doc
	})
	return specDoc, specErr
}

// Server serves the calculator over HTTP. It keeps no per-client state:
// every request builds its own form on top of Defaults.
type Server struct {
	Calculator *tempera.Calculator
	Defaults   domain.Fields
	Gatherer   prometheus.Gatherer
	Logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCalculator sets the calculator used for every request.
func WithCalculator(calc *tempera.Calculator) Option {
	return func(s *Server) {
		s.Calculator = calc
	}
}

// WithDefaults sets the fields a request starts from.
func WithDefaults(fields domain.Fields) Option {
	return func(s *Server) {
		s.Defaults = domain.DefaultFields().Overlay(fields)
	}
}

// WithGatherer exposes the given registry on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates the HTTP handler for the calculator.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		Calculator: tempera.New(tempera.WithSource("http")),
		Defaults:   domain.DefaultFields(),
		Logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.GetPage)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Post("/calculate", s.Calculate)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := Spec(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	} else if err != nil {
		s.Logger.Error("OpenAPI spec unavailable", "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "tempera-http",
		"version":     strings.TrimSpace(tempera.Version),
		"api_version": apiVersion,
	})
}

// Calculate handles the POST /calculate request.
// Unparsable numbers are not an error: they count as zero, exactly as on the page.
func (s *Server) Calculate(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Calculate: invalid request body", "error", err)
		return
	}

	fields, err := config.DecodeFields(body, s.Defaults)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid fields: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Calculate: invalid fields", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, s.view(r.Context(), fields))
}

// GetPage handles GET /, rendering the calculator page for the fields in the query string.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	fields := s.Defaults
	q := r.URL.Query()
	for _, name := range []string{
		domain.FieldTotal, domain.FieldTarget, domain.FieldHot,
		domain.FieldMode, domain.FieldColdWater, domain.FieldIceStart,
	} {
		if q.Has(name) {
			_ = fields.Set(name, q.Get(name))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Render(w, s.view(r.Context(), fields)); err != nil {
		s.Logger.Error("page render failed", "error", err)
	}
}

func (s *Server) view(ctx context.Context, fields domain.Fields) form.View {
	return form.New(ctx, s.Calculator, fields).View()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
