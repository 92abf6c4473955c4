package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/dosecurve/pkg/domain/interfaces"
)

// defaultEvery is the sampling interval of /api/curve when not given
const defaultEvery = 1

// Server represents the HTTP server displaying the dose curve
type Server struct {
	*http.Server
	router  chi.Router
	curveUC interfaces.Curve
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, curveUC interfaces.Curve) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		curveUC: curveUC,
	}

	router.Get("/health", handleHealth)
	router.Get("/", server.handleChart)
	router.Route("/api", func(r chi.Router) {
		r.Get("/curve", server.handleCurve)
	})

	return server
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "dosecurve",
	})
}

// handleChart renders the chart page
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.curveUC.RenderChart(r.Context(), &buf); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render chart", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", s.curveUC.ChartContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write chart", "error", err)
	}
}

// handleCurve returns the evaluated curve as JSON
func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	every := defaultEvery
	if v := r.URL.Query().Get("every"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, r, http.StatusBadRequest, map[string]string{
				"error": "every must be a positive integer",
			})
			return
		}
		every = n
	}

	report, err := s.curveUC.Report(r.Context(), every)
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to build curve report", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, map[string]string{
			"error": "failed to build curve report",
		})
		return
	}

	writeJSON(w, r, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
