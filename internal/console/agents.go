package console

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/mention"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/metrics"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/query"
)

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("agents").Inc()
	switch r.Method {
	case http.MethodGet:
		s.listAgents(w, r)
	case http.MethodPost:
		s.createAgent(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := s.providers.Agents(r.Context())
	if err != nil {
		writeProviderError(w, err)
		return
	}

	params := r.URL.Query()
	search := query.NewSearch(agents, query.SearchOptions[provider.Agent]{
		Keys: []query.KeyFunc[provider.Agent]{
			func(a provider.Agent) (string, bool) { return a.Name, true },
			func(a provider.Agent) (string, bool) { return a.Description, true },
		},
	})
	if q := params.Get("q"); q != "" {
		search.SetQuery(q)
		metrics.SearchQueriesTotal.Inc()
	}

	filter := query.NewFilter(search.Items(), func(a provider.Agent) string { return a.Status }, "")
	if v := params.Get("status"); v != "" {
		filter.Set(v)
	}

	page, perPage := pageParams(r)
	writeJSON(w, http.StatusOK, listResponse[provider.Agent]{
		PageResult: query.Page(filter.Items(), page, perPage),
		Counts:     filter.Counts(),
	})
}

// createAgent validates the submitted form, renders @mentions in the
// instruction text, and connects every integration those mentions
// reference before persisting.
func (s *Server) createAgent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string           `json:"name"`
		Description  string           `json:"description"`
		Model        string           `json:"model"`
		Instructions string           `json:"instructions"`
		Integrations []string         `json:"integrations"`
		Trigger      provider.Trigger `json:"trigger"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(req.Model) == "" {
		fields["model"] = "model is required"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	ctx := r.Context()
	mentioned := mention.Mentions(req.Instructions, s.registry)
	for _, name := range mentioned {
		changed, err := s.providers.SetIntegrationConnected(ctx, name, true)
		if err != nil {
			s.logger.Warn("auto-connect failed", "integration", name, "error", err)
			continue
		}
		if changed {
			s.events.Emit(events.Event{Type: events.IntegrationConnected, Subject: name,
				Fields: map[string]string{"via": "mention"}})
		}
	}

	agent := provider.Agent{
		Name:         req.Name,
		Description:  req.Description,
		Model:        req.Model,
		Instructions: mention.Render(req.Instructions, s.registry),
		Integrations: mergeNames(req.Integrations, mentioned),
		Trigger:      req.Trigger,
	}
	created, err := s.providers.CreateAgent(ctx, agent)
	if err != nil {
		writeProviderError(w, err)
		return
	}

	s.events.Emit(events.Event{Type: events.AgentCreated, Subject: created.ID,
		Fields: map[string]string{"name": created.Name}})
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("agents").Inc()
	parts := pathTail(r, "/api/agents/")
	if parts == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		agent, err := s.providers.Agent(r.Context(), id)
		if err != nil {
			writeProviderError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, agent)

	case len(parts) == 1 && r.Method == http.MethodDelete:
		if err := s.providers.DeleteAgent(r.Context(), id); err != nil {
			writeProviderError(w, err)
			return
		}
		s.events.Emit(events.Event{Type: events.AgentDeleted, Subject: id})
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	case len(parts) == 2 && r.Method == http.MethodPost:
		s.agentAction(w, r, id, parts[1])

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) agentAction(w http.ResponseWriter, r *http.Request, id, action string) {
	var status string
	switch action {
	case "pause":
		status = "paused"
	case "resume":
		status = "active"
	default:
		writeError(w, http.StatusNotFound, "unknown action "+action)
		return
	}

	if err := s.providers.UpdateAgentStatus(r.Context(), id, status); err != nil {
		writeProviderError(w, err)
		return
	}
	s.events.Emit(events.Event{Type: events.AgentStatusChanged, Subject: id,
		Fields: map[string]string{"status": status}})
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": status})
}

func mergeNames(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, name := range list {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
