package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"imagelab/internal/config"
)

// Server routes HTTP requests to pipeline operations.
type Server struct {
	cfg *config.Config
	log zerolog.Logger
	mux *http.ServeMux
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// New creates a server with its routes registered.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	s := &Server{
		cfg: cfg,
		log: log,
		mux: http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /api/{op}", s.handleProcess)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	return s
}

// Handler returns the server's root handler with request logging attached.
func (s *Server) Handler() http.Handler {
	return s.withLogging(s.mux)
}

// Run starts the HTTP server on the configured address and blocks until it
// stops.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info().Str("addr", s.cfg.Addr).Msg("listening")
	return srv.ListenAndServe()
}

// withLogging logs one line per request: method, path, status and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// statusWriter records the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError sends a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeJSON sends a value as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
