// Package server exposes the comparison engine over HTTP. The server is
// stateless glue: it decodes two raw node sets, invokes the engine, and
// returns the result list with a summary. Extraction, persistence, and
// report storage stay with the collaborators that call this API.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	designdiff "github.com/hellenic-development/design-diff"
	"github.com/hellenic-development/design-diff/pkg/compare"
	"github.com/hellenic-development/design-diff/pkg/design"
	"github.com/hellenic-development/design-diff/pkg/report"
)

// Server wraps the comparison engine behind a chi router.
type Server struct {
	logger *log.Logger
	http   *http.Server
}

// New creates a server listening on addr. A nil logger falls back to
// log.Default.
func New(addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{logger: logger}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/compare", s.handleCompare)
	return r
}

// ListenAndServe runs the server until the context is canceled or the
// listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// compareRequest is the POST /api/compare body. Figma and Web are
// required; Tolerance and BaseFontSize are optional.
type compareRequest struct {
	Figma        []design.RawNode        `json:"figma"`
	Web          []design.RawNode        `json:"web"`
	Tolerance    compare.ToleranceConfig `json:"tolerance"`
	BaseFontSize float64                 `json:"baseFontSize"`
}

// compareResponse carries the run identifier, the aggregate summary, and
// the flat result list.
type compareResponse struct {
	RunID   string          `json:"runId"`
	Summary report.Summary  `json:"summary"`
	Results []design.Result `json:"results"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Figma == nil || req.Web == nil {
		s.writeError(w, http.StatusBadRequest, "both figma and web node arrays are required")
		return
	}

	results := designdiff.Compare(req.Figma, req.Web, designdiff.Options{
		BaseFontSize: req.BaseFontSize,
		Tolerance:    req.Tolerance,
	})
	if results == nil {
		results = []design.Result{}
	}

	s.writeJSON(w, http.StatusOK, compareResponse{
		RunID:   uuid.NewString(),
		Summary: report.Summarize(results),
		Results: results,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
