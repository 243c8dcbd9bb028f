package console

import (
	"net/http"
	"time"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/metrics"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/query"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/store"
)

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("activity").Inc()
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	entries, err := s.activity.List(r.Context(), 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	params := r.URL.Query()
	search := query.NewSearch(entries, query.SearchOptions[store.ActivityEntry]{
		Keys: []query.KeyFunc[store.ActivityEntry]{
			func(e store.ActivityEntry) (string, bool) { return e.AgentName, true },
			func(e store.ActivityEntry) (string, bool) { return e.Message, true },
			func(e store.ActivityEntry) (string, bool) { return e.Tool, e.Tool != "" },
		},
	})
	if q := params.Get("q"); q != "" {
		search.SetQuery(q)
		metrics.SearchQueriesTotal.Inc()
	}

	filter := query.NewFilter(search.Items(), func(e store.ActivityEntry) string { return e.Status }, "")
	if v := params.Get("status"); v != "" {
		filter.Set(v)
	}

	items := filter.Items()
	if agent := params.Get("agent"); agent != "" {
		byAgent := make([]store.ActivityEntry, 0, len(items))
		for _, e := range items {
			if e.AgentID == agent {
				byAgent = append(byAgent, e)
			}
		}
		items = byAgent
	}

	page, perPage := pageParams(r)
	writeJSON(w, http.StatusOK, listResponse[store.ActivityEntry]{
		PageResult: query.Page(items, page, perPage),
		Counts:     filter.Counts(),
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("analytics").Inc()
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	since := parseSince(r.URL.Query().Get("range"), time.Now())
	summary, err := s.activity.Summary(r.Context(), since)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
