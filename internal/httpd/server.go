// Package httpd exposes the sync orchestration over a small HTTP surface:
// a static control page, POST /sync and GET /status.
package httpd

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sheetbridge/sheetbridge/internal/syncer"
)

//go:embed html
var content embed.FS

const (
	contentTypeJSON        = "application/json"
	defaultShutdownTimeout = 5 * time.Second
)

// Synchronizer is the orchestrator contract the server depends on.
type Synchronizer interface {
	Synchronize(ctx context.Context) syncer.Result
}

// Server serves the control page and the sync/status endpoints. The
// orchestrator is an injected value constructed at process start - the
// server owns no sync state of its own.
type Server struct {
	sync       Synchronizer
	sourceA    bool
	sourceB    bool
	httpServer *http.Server
	addr       string
}

// NewServer wires the orchestrator into the request handling layer.
// sourceA/sourceB report whether the corresponding collaborator handle
// initialised successfully at startup; /status reflects exactly that and
// nothing else.
func NewServer(sync Synchronizer, addr string, sourceA, sourceB bool) *Server {
	return &Server{
		sync:    sync,
		sourceA: sourceA,
		sourceB: sourceB,
		addr:    addr,
	}
}

// Start begins serving in a background goroutine.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router(),
		ReadHeaderTimeout: time.Second,
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("HTTP server started", "addr", s.addr)

	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Post("/sync", s.handleSync)

	return r
}

// recoverer converts a panic anywhere below into a generic JSON error that
// withholds internal details from the response.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				slog.Error("Panic handling request", "url", rq.URL.Path, "panic", v)

				s.writeJSON(w, http.StatusInternalServerError, SyncResponse{
					Success:   false,
					Message:   "An error occurred during sync. Please check your configuration.",
					Timestamp: timestamp(),
				})
			}
		}()

		next.ServeHTTP(w, rq)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, rq *http.Request) {
	page, err := content.ReadFile("html/index.html")
	if err != nil {
		http.Error(w, "Internal error formatting page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, rq *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": StatusOK})
}

func (s *Server) handleStatus(w http.ResponseWriter, rq *http.Request) {
	status := StatusResponse{
		SourceA:   StatusNotConfigured,
		SourceB:   StatusNotConfigured,
		Timestamp: timestamp(),
	}

	if s.sourceA {
		status.SourceA = StatusOK
	}

	if s.sourceB {
		status.SourceB = StatusOK
	}

	s.writeJSON(w, http.StatusOK, status)
}

// handleSync triggers one synchronisation. Expected failures are reported
// with 200 and success:false - only an unexpected fault (caught by the
// recoverer) produces a non-200 status.
func (s *Server) handleSync(w http.ResponseWriter, rq *http.Request) {
	result := s.sync.Synchronize(rq.Context())

	if result.Outcome == syncer.Failed {
		slog.Warn("Sync failed", "stage", result.Stage, "reason", result.Reason)
	} else {
		slog.Info("Sync finished", "outcome", string(result.Outcome))
	}

	s.writeJSON(w, http.StatusOK, SyncResponse{
		Success:   result.Outcome != syncer.Failed,
		Message:   result.Message(),
		Timestamp: timestamp(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Error encoding response", "error", err)
	}
}
