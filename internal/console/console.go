// Package console is the dashboard API server. Every route maps 1:1 to a
// dashboard section; list endpoints run through the shared query layer
// for search, filtering, and pagination.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/config"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/metrics"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/query"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/sandbox"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/store"
)

// Server is the console API server.
type Server struct {
	providers provider.Provider
	activity  store.ActivityStore
	exec      *sandbox.Executor
	registry  *catalog.Registry
	events    *events.Emitter
	cfg       *config.Config
	authToken string
	logger    *slog.Logger
	startAt   time.Time
}

// NewServer creates a new console server.
func NewServer(
	p provider.Provider,
	activity store.ActivityStore,
	exec *sandbox.Executor,
	registry *catalog.Registry,
	emitter *events.Emitter,
	cfg *config.Config,
	logger *slog.Logger,
) *Server {
	l := logger.With("component", "console")
	if cfg.AuthToken == "" {
		l.Warn("console API has no auth token configured — all requests will be allowed")
	}
	return &Server{
		providers: p,
		activity:  activity,
		exec:      exec,
		registry:  registry,
		events:    emitter,
		cfg:       cfg,
		authToken: cfg.AuthToken,
		logger:    l,
		startAt:   time.Now(),
	}
}

// Handler returns the http.Handler for the console. The metrics endpoint
// sits outside the auth middleware; everything under /api requires the
// bearer token when one is configured.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/api/agents", s.handleAgents)
	api.HandleFunc("/api/agents/", s.handleAgent)
	api.HandleFunc("/api/integrations", s.handleIntegrations)
	api.HandleFunc("/api/integrations/", s.handleIntegration)
	api.HandleFunc("/api/activity", s.handleActivity)
	api.HandleFunc("/api/analytics/summary", s.handleAnalytics)
	api.HandleFunc("/api/servers", s.handleServers)
	api.HandleFunc("/api/servers/", s.handleServer)
	api.HandleFunc("/api/team", s.handleTeam)
	api.HandleFunc("/api/organization", s.handleOrganization)
	api.HandleFunc("/api/keys", s.handleKeys)
	api.HandleFunc("/api/keys/", s.handleKey)
	api.HandleFunc("/api/mentions/compose", s.handleCompose)
	api.HandleFunc("/api/events", s.handleSSE)
	api.HandleFunc("/api/health", s.handleHealth)

	root := http.NewServeMux()
	root.Handle("/metrics", metrics.Handler())
	root.Handle("/", s.authMiddleware(api))
	return root
}

// authMiddleware checks for a valid Bearer token if one is configured.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.authToken != "" {
			auth := r.Header.Get("Authorization")
			if auth != "Bearer "+s.authToken {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	agents, _ := s.providers.Agents(ctx)
	servers, _ := s.providers.Servers(ctx)
	connected := 0
	if integrations, err := s.providers.Integrations(ctx); err == nil {
		for _, i := range integrations {
			if i.Connected {
				connected++
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":                 "ok",
		"uptime_seconds":         time.Since(s.startAt).Seconds(),
		"agent_count":            len(agents),
		"server_count":           len(servers),
		"connected_integrations": connected,
	})
}

// handleSSE streams console events as Server-Sent Events.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	metrics.SSEClientsActive.Inc()
	defer metrics.SSEClientsActive.Dec()

	ch := make(chan events.Event, 64)
	id := s.events.OnEvent(func(ev events.Event) {
		select {
		case ch <- ev:
		default: // drop if client is slow
		}
	})
	defer s.events.RemoveHandler(id)

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			data, _ := json.Marshal(ev)
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}

// ListenAndServe starts the console server on the given address.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // no timeout for the SSE stream
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx)
	}()

	s.logger.Info("console server starting", "addr", addr)
	return srv.ListenAndServe()
}

// listResponse is the envelope for paginated list endpoints.
type listResponse[T any] struct {
	query.PageResult[T]
	Counts map[string]int `json:"counts,omitempty"`
}
