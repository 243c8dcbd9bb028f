package console

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/metrics"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/query"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/store"
)

func (s *Server) handleServers(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("servers").Inc()
	switch r.Method {
	case http.MethodGet:
		s.listServers(w, r)
	case http.MethodPost:
		s.createServer(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listServers(w http.ResponseWriter, r *http.Request) {
	servers, err := s.providers.Servers(r.Context())
	if err != nil {
		writeProviderError(w, err)
		return
	}

	params := r.URL.Query()
	search := query.NewSearch(servers, query.SearchOptions[provider.MCPServer]{
		Keys: []query.KeyFunc[provider.MCPServer]{
			func(m provider.MCPServer) (string, bool) { return m.Name, true },
			func(m provider.MCPServer) (string, bool) { return m.Description, true },
		},
	})
	if q := params.Get("q"); q != "" {
		search.SetQuery(q)
		metrics.SearchQueriesTotal.Inc()
	}

	filter := query.NewFilter(search.Items(), func(m provider.MCPServer) string { return m.Status }, "")
	if v := params.Get("status"); v != "" {
		filter.Set(v)
	}

	page, perPage := pageParams(r)
	writeJSON(w, http.StatusOK, listResponse[provider.MCPServer]{
		PageResult: query.Page(filter.Items(), page, perPage),
		Counts:     filter.Counts(),
	})
}

func (s *Server) createServer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string             `json:"name"`
		Description string             `json:"description"`
		Transport   string             `json:"transport"`
		Endpoint    string             `json:"endpoint"`
		Tools       []provider.MCPTool `json:"tools"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	switch req.Transport {
	case "stdio", "http", "sse":
	case "":
		fields["transport"] = "transport is required"
	default:
		fields["transport"] = "transport must be stdio, http, or sse"
	}
	if (req.Transport == "http" || req.Transport == "sse") && strings.TrimSpace(req.Endpoint) == "" {
		fields["endpoint"] = "endpoint is required for " + req.Transport + " transport"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	created, err := s.providers.CreateServer(r.Context(), provider.MCPServer{
		Name:        req.Name,
		Description: req.Description,
		Transport:   req.Transport,
		Endpoint:    req.Endpoint,
		Tools:       req.Tools,
	})
	if err != nil {
		writeProviderError(w, err)
		return
	}

	s.events.Emit(events.Event{Type: events.ServerRegistered, Subject: created.ID,
		Fields: map[string]string{"name": created.Name}})
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleServer(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("servers").Inc()
	parts := pathTail(r, "/api/servers/")
	if parts == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		srv, err := s.providers.Server(r.Context(), id)
		if err != nil {
			writeProviderError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, srv)

	case len(parts) == 1 && r.Method == http.MethodDelete:
		if err := s.providers.DeleteServer(r.Context(), id); err != nil {
			writeProviderError(w, err)
			return
		}
		s.events.Emit(events.Event{Type: events.ServerRemoved, Subject: id})
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	// POST /api/servers/{id}/tools/{tool}/execute
	case len(parts) == 4 && parts[1] == "tools" && parts[3] == "execute" && r.Method == http.MethodPost:
		s.executeTool(w, r, id, parts[2])

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// executeTool runs a simulated tools/call through the sandbox, records
// the outcome in the activity log, and emits a tool.executed event.
func (s *Server) executeTool(w http.ResponseWriter, r *http.Request, id, tool string) {
	var req struct {
		Arguments map[string]any `json:"arguments"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	ctx := r.Context()
	srv, err := s.providers.Server(ctx, id)
	if err != nil {
		writeProviderError(w, err)
		return
	}

	result, err := s.exec.Execute(ctx, srv, tool, req.Arguments)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, message := "success", tool+" completed"
	if !result.OK() {
		outcome, message = "error", result.Error
	}
	if err := s.activity.Append(ctx, store.ActivityEntry{
		AgentID:    srv.ID,
		AgentName:  srv.Name,
		Kind:       "console",
		Tool:       tool,
		Status:     outcome,
		Message:    message,
		DurationMs: result.DurationMs,
	}); err != nil {
		s.logger.Warn("activity append failed", "error", err)
	}

	s.events.Emit(events.Event{Type: events.ToolExecuted, Subject: srv.Name,
		Fields: map[string]string{"tool": tool, "outcome": outcome}})
	writeJSON(w, http.StatusOK, result)
}
