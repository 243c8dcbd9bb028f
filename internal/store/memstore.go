package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is the in-memory ActivityStore backing the demo console.
type MemStore struct {
	mu      sync.RWMutex
	entries []ActivityEntry
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Append records one entry.
func (m *MemStore) Append(_ context.Context, e ActivityEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return nil
}

// List returns entries newest-first.
func (m *MemStore) List(_ context.Context, limit int) ([]ActivityEntry, error) {
	m.mu.RLock()
	out := make([]ActivityEntry, len(m.entries))
	copy(out, m.entries)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Summary aggregates entries recorded at or after since.
func (m *MemStore) Summary(_ context.Context, since time.Time) (*Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := &Summary{}
	type acc struct {
		name     string
		runs     int
		errors   int
		duration int64
	}
	byAgent := make(map[string]*acc)

	for _, e := range m.entries {
		if e.CreatedAt.Before(since) {
			continue
		}
		s.TotalRuns++
		switch e.Status {
		case "success":
			s.Successes++
		case "error":
			s.Errors++
		}
		a, ok := byAgent[e.AgentID]
		if !ok {
			a = &acc{name: e.AgentName}
			byAgent[e.AgentID] = a
		}
		a.runs++
		if e.Status == "error" {
			a.errors++
		}
		a.duration += e.DurationMs
	}

	if finished := s.Successes + s.Errors; finished > 0 {
		s.SuccessRate = float64(s.Successes) / float64(finished)
	}

	for id, a := range byAgent {
		s.ByAgent = append(s.ByAgent, AgentRunSummary{
			AgentID:       id,
			AgentName:     a.name,
			Runs:          a.runs,
			Errors:        a.errors,
			AvgDurationMs: float64(a.duration) / float64(a.runs),
		})
	}
	sort.Slice(s.ByAgent, func(i, j int) bool { return s.ByAgent[i].Runs > s.ByAgent[j].Runs })
	return s, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() {}
