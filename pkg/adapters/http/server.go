// Package http exposes the machine engine over a JSON API. Runs are
// executed synchronously: the caller posts a program and an input tape,
// the response carries the terminal record. Finished runs are persisted
// through a ports.RunStore so they can be fetched again later.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aretw0/tng"
	"github.com/aretw0/tng/internal/logging"
	"github.com/aretw0/tng/internal/metrics"
	"github.com/aretw0/tng/pkg/domain"
	"github.com/aretw0/tng/pkg/loader"
	"github.com/aretw0/tng/pkg/ports"
)

// Server wires the engine to the HTTP surface.
type Server struct {
	programs ports.ProgramSource
	runs     ports.RunStore
	budget   uint64
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// ServerOption configures the HTTP server.
type ServerOption func(*Server)

// WithBudget sets the default step budget applied when a request does
// not carry its own.
func WithBudget(n uint64) ServerOption {
	return func(s *Server) { s.budget = n }
}

// WithMetrics attaches run counters updated after every execution.
func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// NewHandler builds the router. programs may be nil when only inline
// sources are accepted; runs must be set.
func NewHandler(programs ports.ProgramSource, runs ports.RunStore, opts ...ServerOption) http.Handler {
	s := &Server{
		programs: programs,
		runs:     runs,
		budget:   tng.DefaultStepBudget,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/programs", s.ListPrograms)
	r.Post("/runs", s.CreateRun)
	r.Get("/runs/{id}", s.GetRun)
	r.Delete("/runs/{id}", s.DeleteRun)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunRequest is the POST /runs body. Exactly one of Program (a name
// resolved through the program source) or Source (inline program text)
// must be set.
type RunRequest struct {
	Program string `json:"program,omitempty"`
	Source  string `json:"source,omitempty"`
	Format  string `json:"format,omitempty"` // "text" (default) or "yaml"
	Tape    string `json:"tape"`
	Budget  uint64 `json:"budget,omitempty"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "tng-http",
		"version": strings.TrimSpace(tng.Version),
	})
}

// ListPrograms handles the GET /programs request.
func (s *Server) ListPrograms(w http.ResponseWriter, r *http.Request) {
	if s.programs == nil {
		writeJSON(w, http.StatusOK, []string{})
		return
	}
	names, err := s.programs.List()
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.logger.Error("ListPrograms failed", "error", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

// CreateRun handles the POST /runs request. The run executes inline;
// the response is the stored record.
func (s *Server) CreateRun(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("CreateRun: Invalid request body", "error", err)
		return
	}

	program, name, err := s.resolveProgram(body)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrProgramNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("Program error: %v", err), status)
		s.logger.Warn("CreateRun: Program rejected", "error", err)
		return
	}

	budget := body.Budget
	if budget == 0 {
		budget = s.budget
	}

	engine, err := tng.New(program, tng.WithStepBudget(budget), tng.WithLogger(s.logger))
	if err != nil {
		http.Error(w, fmt.Sprintf("Engine error: %v", err), http.StatusInternalServerError)
		s.logger.Error("CreateRun: Engine init failed", "error", err)
		return
	}

	res, err := engine.RunString(r.Context(), body.Tape)
	if err != nil {
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusInternalServerError)
		s.logger.Error("CreateRun: Run failed", "error", err)
		return
	}
	if s.metrics != nil {
		s.metrics.ObserveRun(res)
	}

	record := domain.NewRunRecord(uuid.NewString(), name, body.Tape, res)
	if err := s.runs.Save(r.Context(), record); err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		s.logger.Error("CreateRun: Save failed", "error", err, "run_id", record.ID)
		return
	}

	s.logger.Info("Run completed", "run_id", record.ID, "outcome", res.Outcome, "steps", res.Steps)
	writeJSON(w, http.StatusCreated, record)
}

// GetRun handles the GET /runs/{id} request.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := s.runs.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			http.Error(w, "Run not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		s.logger.Error("GetRun failed", "error", err, "run_id", id)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// DeleteRun handles the DELETE /runs/{id} request.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.runs.Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		s.logger.Error("DeleteRun failed", "error", err, "run_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resolveProgram(body RunRequest) (*domain.Program, string, error) {
	switch {
	case body.Source != "" && body.Program != "":
		return nil, "", fmt.Errorf("program and source are mutually exclusive")
	case body.Source != "":
		if strings.EqualFold(body.Format, "yaml") {
			p, err := loader.ParseYAML([]byte(body.Source))
			return p, "inline", err
		}
		p, err := loader.ParseString(body.Source)
		return p, "inline", err
	case body.Program != "":
		if s.programs == nil {
			return nil, "", domain.ErrProgramNotFound
		}
		p, err := s.programs.Load(body.Program)
		return p, body.Program, err
	default:
		return nil, "", fmt.Errorf("either program or source is required")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}
