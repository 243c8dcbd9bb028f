// Package store persists the activity log behind the activity and
// analytics sections. The console defaults to the in-memory store; a
// Postgres-backed implementation drops in behind the same interface when
// a database URL is configured.
package store

import (
	"context"
	"time"
)

// ActivityEntry is one row of the activity log: an agent run, a tool
// execution, or a console operation.
type ActivityEntry struct {
	ID         string    `json:"id"`
	AgentID    string    `json:"agent_id"`
	AgentName  string    `json:"agent_name"`
	Kind       string    `json:"kind"` // "run", "tool", "console"
	Tool       string    `json:"tool,omitempty"`
	Status     string    `json:"status"` // "success", "error", "running"
	Message    string    `json:"message"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// AgentRunSummary is the per-agent breakdown within a Summary.
type AgentRunSummary struct {
	AgentID       string  `json:"agent_id"`
	AgentName     string  `json:"agent_name"`
	Runs          int     `json:"runs"`
	Errors        int     `json:"errors"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
}

// Summary is the aggregate view served by the analytics section.
type Summary struct {
	TotalRuns   int               `json:"total_runs"`
	Successes   int               `json:"successes"`
	Errors      int               `json:"errors"`
	SuccessRate float64           `json:"success_rate"`
	ByAgent     []AgentRunSummary `json:"by_agent"`
}

// ActivityStore is the persistence interface for the activity log.
type ActivityStore interface {
	// Append records one entry. A missing ID or timestamp is filled in.
	Append(ctx context.Context, e ActivityEntry) error

	// List returns entries newest-first, up to limit (0 means all).
	List(ctx context.Context, limit int) ([]ActivityEntry, error)

	// Summary aggregates entries recorded at or after since.
	Summary(ctx context.Context, since time.Time) (*Summary, error)

	// Close releases any underlying resources.
	Close()
}
