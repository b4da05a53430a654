// Package server is the HTTP façade in front of a FloorAgent: it validates
// inbound Open Floor payloads, hands them to the agent and serializes the
// reply. Three routes: POST / for envelopes, GET /health for liveness,
// GET /manifest for the agent's capability manifest.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/openfloor-dev/parrot-go/agent"
	"github.com/openfloor-dev/parrot-go/logging"
	"github.com/openfloor-dev/parrot-go/metrics"
	"github.com/openfloor-dev/parrot-go/openfloor"
)

const maxBodyBytes = 1 << 20 // 1 MiB is generous for conversational envelopes

// Options configures the server.
type Options struct {
	Logger logging.Logger
}

// Server hosts the Open Floor HTTP endpoint for a single agent.
type Server struct {
	addr   string
	agent  agent.FloorAgent
	logger logging.Logger
	srv    *http.Server
}

// New constructs a Server for the given agent.
func New(addr string, fa agent.FloorAgent, optFns ...func(o *Options)) *Server {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Server{addr: addr, agent: fa, logger: opts.Logger}
}

// Handler returns the route tree, exposed for tests and embedding.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleEnvelope)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/manifest", s.handleManifest)
	return s.withCORS(mux)
}

// Start runs the HTTP server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("open floor agent listening", "addr", s.addr, "agent", s.agent.Name())
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// handleEnvelope is the protocol-bearing route: validate, dispatch, reply.
func (s *Server) handleEnvelope(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("panic while processing envelope", "panic", rec)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error":   "internal server error",
				"message": "envelope processing failed",
			})
		}
	}()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload", "details": []string{err.Error()}})
		return
	}

	payload, verrs := openfloor.ValidatePayload(body)
	if len(verrs) > 0 {
		metrics.IncValidationFailure()
		details := make([]string, len(verrs))
		for i, ve := range verrs {
			details[i] = ve.Error()
		}
		s.logger.Warn("rejected invalid payload", "details", details)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload", "details": details})
		return
	}

	metrics.IncEnvelope()
	for _, ev := range payload.OpenFloor.Events {
		metrics.IncEvent(string(ev.EventType))
	}

	reply := s.agent.ProcessEnvelope(r.Context(), payload.OpenFloor)
	metrics.AddResponses(len(reply.Events))

	out, err := openfloor.Payload{OpenFloor: reply}.Marshal()
	if err != nil {
		s.logger.Error("failed to serialize reply envelope", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "internal server error",
			"message": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handleHealth is a static liveness indicator.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"agent":     s.agent.Name(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleManifest serves the agent's manifest without requiring an envelope.
func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, s.agent.Manifest())
}

// withCORS allows browser-hosted conversation clients to reach the agent.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
