package console

import (
	"encoding/json"
	"net/http"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/mention"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/metrics"
)

// composeRequest is one editing step: the draft text and caret as the
// client has them, plus the input event to apply. The endpoint is
// stateless; the composer is rebuilt from the request every time.
type composeRequest struct {
	Text      string   `json:"text"`
	Caret     int      `json:"caret"`
	Connected []string `json:"connected"`
	Key       string   `json:"key"`
	Rune      string   `json:"rune,omitempty"`
}

type composeResponse struct {
	Text       string                `json:"text"`
	Caret      int                   `json:"caret"`
	State      string                `json:"state"`
	Filter     string                `json:"filter"`
	Candidates []catalog.Integration `json:"candidates"`
	Highlight  int                   `json:"highlight"`
	Committed  []string              `json:"committed,omitempty"`
}

var composeKeys = map[string]mention.Key{
	"rune":          mention.KeyRune,
	"backspace":     mention.KeyBackspace,
	"up":            mention.KeyArrowUp,
	"down":          mention.KeyArrowDown,
	"enter":         mention.KeyEnter,
	"tab":           mention.KeyTab,
	"escape":        mention.KeyEscape,
	"click_outside": mention.KeyClickOutside,
}

func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	metrics.SectionRequestsTotal.WithLabelValues("mentions").Inc()
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	key, ok := composeKeys[req.Key]
	if !ok {
		writeFieldErrors(w, map[string]string{"key": "unknown key " + req.Key})
		return
	}
	ev := mention.Event{Key: key}
	if key == mention.KeyRune {
		runes := []rune(req.Rune)
		if len(runes) != 1 {
			writeFieldErrors(w, map[string]string{"rune": "rune must be a single character"})
			return
		}
		ev.Rune = runes[0]
	}

	var committed []string
	composer := mention.NewComposer(s.registry, req.Connected, func(name string) {
		committed = append(committed, name)
	})
	composer.SetText(req.Text, req.Caret)
	composer.Feed(ev)

	ctx := r.Context()
	for _, name := range committed {
		changed, err := s.providers.SetIntegrationConnected(ctx, name, true)
		if err != nil {
			s.logger.Warn("auto-connect failed", "integration", name, "error", err)
			continue
		}
		if changed {
			s.events.Emit(events.Event{Type: events.IntegrationConnected, Subject: name,
				Fields: map[string]string{"via": "mention"}})
		}
		s.events.Emit(events.Event{Type: events.MentionCommitted, Subject: name})
	}

	candidates := composer.Candidates()
	if candidates == nil {
		candidates = []catalog.Integration{}
	}
	writeJSON(w, http.StatusOK, composeResponse{
		Text:       composer.Text(),
		Caret:      composer.Caret(),
		State:      composer.State().String(),
		Filter:     composer.Filter(),
		Candidates: candidates,
		Highlight:  composer.Highlight(),
		Committed:  committed,
	})
}
