package console

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/metrics"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/query"
)

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("team").Inc()
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	members, err := s.providers.Members(r.Context())
	if err != nil {
		writeProviderError(w, err)
		return
	}

	params := r.URL.Query()
	search := query.NewSearch(members, query.SearchOptions[provider.TeamMember]{
		Keys: []query.KeyFunc[provider.TeamMember]{
			func(m provider.TeamMember) (string, bool) { return m.Name, true },
			func(m provider.TeamMember) (string, bool) { return m.Email, true },
		},
	})
	if q := params.Get("q"); q != "" {
		search.SetQuery(q)
		metrics.SearchQueriesTotal.Inc()
	}

	filter := query.NewFilter(search.Items(), func(m provider.TeamMember) string { return m.Role }, "")
	if v := params.Get("role"); v != "" {
		filter.Set(v)
	}

	page, perPage := pageParams(r)
	writeJSON(w, http.StatusOK, listResponse[provider.TeamMember]{
		PageResult: query.Page(filter.Items(), page, perPage),
		Counts:     filter.Counts(),
	})
}

func (s *Server) handleOrganization(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("organization").Inc()
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	org, err := s.providers.Organization(r.Context())
	if err != nil {
		writeProviderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("keys").Inc()
	switch r.Method {
	case http.MethodGet:
		keys, err := s.providers.Keys(r.Context())
		if err != nil {
			writeProviderError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": keys})

	case http.MethodPost:
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeFieldErrors(w, map[string]string{"name": "name is required"})
			return
		}

		// The secret is in this response only; the stored record keeps
		// just the prefix.
		key, err := s.providers.CreateKey(r.Context(), req.Name)
		if err != nil {
			writeProviderError(w, err)
			return
		}
		s.events.Emit(events.Event{Type: events.KeyCreated, Subject: key.ID,
			Fields: map[string]string{"name": key.Name}})
		writeJSON(w, http.StatusCreated, key)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("keys").Inc()
	parts := pathTail(r, "/api/keys/")
	if len(parts) != 1 || r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := s.providers.DeleteKey(r.Context(), parts[0]); err != nil {
		writeProviderError(w, err)
		return
	}
	s.events.Emit(events.Event{Type: events.KeyRevoked, Subject: parts[0]})
	writeJSON(w, http.StatusOK, map[string]string{"status": "revoked"})
}
