package console

import (
	"net/http"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/metrics"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/query"
)

func (s *Server) handleIntegrations(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("integrations").Inc()
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	integrations, err := s.providers.Integrations(r.Context())
	if err != nil {
		writeProviderError(w, err)
		return
	}

	params := r.URL.Query()
	search := query.NewSearch(integrations, query.SearchOptions[provider.Integration]{
		Keys: []query.KeyFunc[provider.Integration]{
			func(i provider.Integration) (string, bool) { return i.Name, true },
			func(i provider.Integration) (string, bool) { return i.Category, true },
		},
	})
	if q := params.Get("q"); q != "" {
		search.SetQuery(q)
		metrics.SearchQueriesTotal.Inc()
	}

	filter := query.NewFilter(search.Items(), func(i provider.Integration) string { return i.Category }, "")
	if v := params.Get("category"); v != "" {
		filter.Set(v)
	}

	items := filter.Items()
	if params.Get("connected") == "true" {
		connected := make([]provider.Integration, 0, len(items))
		for _, i := range items {
			if i.Connected {
				connected = append(connected, i)
			}
		}
		items = connected
	}

	page, perPage := pageParams(r)
	writeJSON(w, http.StatusOK, listResponse[provider.Integration]{
		PageResult: query.Page(items, page, perPage),
		Counts:     filter.Counts(),
	})
}

// handleIntegration serves POST /api/integrations/{name}/connect and
// /disconnect. Names may contain spaces ("Google Drive"); the mux hands
// us the path already unescaped.
func (s *Server) handleIntegration(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("integrations").Inc()
	parts := pathTail(r, "/api/integrations/")
	if len(parts) != 2 || r.Method != http.MethodPost {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	name, action := parts[0], parts[1]

	var connected bool
	var eventType string
	switch action {
	case "connect":
		connected, eventType = true, events.IntegrationConnected
	case "disconnect":
		connected, eventType = false, events.IntegrationDisconnected
	default:
		writeError(w, http.StatusNotFound, "unknown action "+action)
		return
	}

	changed, err := s.providers.SetIntegrationConnected(r.Context(), name, connected)
	if err != nil {
		writeProviderError(w, err)
		return
	}
	if changed {
		s.events.Emit(events.Event{Type: eventType, Subject: name})
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": name, "connected": connected})
}
