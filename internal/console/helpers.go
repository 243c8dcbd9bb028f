package console

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFieldErrors returns a 422 with a field-keyed validation map, the
// shape form views key error styling on.
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}

// writeProviderError maps provider sentinel errors onto HTTP statuses.
func writeProviderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, provider.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, provider.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// pageParams pulls page/per_page query params with sane defaults.
func pageParams(r *http.Request) (page, perPage int) {
	q := r.URL.Query()
	return atoiDefault(q.Get("page"), 1), atoiDefault(q.Get("per_page"), 0)
}

// parseSince maps an analytics range parameter ("24h", "7d", "30d",
// "all") to a cutoff time. Unknown values fall back to the 7-day window.
func parseSince(rangeParam string, now time.Time) time.Time {
	switch strings.ToLower(strings.TrimSpace(rangeParam)) {
	case "all":
		return time.Time{}
	case "24h":
		return now.Add(-24 * time.Hour)
	case "30d":
		return now.AddDate(0, 0, -30)
	case "7d", "":
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// pathTail strips prefix from the request path and splits the remainder
// on "/". Returns nil if the prefix does not match or the tail is empty.
func pathTail(r *http.Request, prefix string) []string {
	rest, ok := strings.CutPrefix(r.URL.Path, prefix)
	if !ok || rest == "" {
		return nil
	}
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) == 1 && parts[0] == "" {
		return nil
	}
	return parts
}
