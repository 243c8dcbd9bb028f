package store

import (
	"context"
	"testing"
	"time"
)

func entry(agent, status string, duration int64, at time.Time) ActivityEntry {
	return ActivityEntry{
		AgentID:    agent,
		AgentName:  agent,
		Kind:       "run",
		Status:     status,
		DurationMs: duration,
		CreatedAt:  at,
	}
}

func TestMemStoreAppendFillsDefaults(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	if err := m.Append(ctx, ActivityEntry{AgentID: "a", Kind: "run", Status: "success"}); err != nil {
		t.Fatalf("append error: %v", err)
	}
	entries, err := m.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].ID == "" {
		t.Error("ID should be generated")
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}
}

func TestMemStoreListNewestFirst(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()
	now := time.Now().UTC()

	m.Append(ctx, entry("a", "success", 100, now.Add(-2*time.Hour)))
	m.Append(ctx, entry("b", "success", 100, now))
	m.Append(ctx, entry("c", "success", 100, now.Add(-1*time.Hour)))

	entries, _ := m.List(ctx, 0)
	want := []string{"b", "c", "a"}
	for i, e := range entries {
		if e.AgentID != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, e.AgentID, want[i])
		}
	}

	limited, _ := m.List(ctx, 2)
	if len(limited) != 2 {
		t.Errorf("limited list = %d entries, want 2", len(limited))
	}
}

func TestMemStoreSummary(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()
	now := time.Now().UTC()

	m.Append(ctx, entry("a", "success", 100, now))
	m.Append(ctx, entry("a", "success", 300, now))
	m.Append(ctx, entry("a", "error", 200, now))
	m.Append(ctx, entry("b", "success", 50, now))
	m.Append(ctx, entry("b", "running", 0, now))
	// Outside the window.
	m.Append(ctx, entry("a", "error", 999, now.Add(-48*time.Hour)))

	s, err := m.Summary(ctx, now.Add(-time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalRuns != 5 {
		t.Errorf("total = %d, want 5", s.TotalRuns)
	}
	if s.Successes != 3 || s.Errors != 1 {
		t.Errorf("successes/errors = %d/%d, want 3/1", s.Successes, s.Errors)
	}
	if s.SuccessRate != 0.75 {
		t.Errorf("success rate = %v, want 0.75", s.SuccessRate)
	}
	if len(s.ByAgent) != 2 {
		t.Fatalf("by-agent groups = %d, want 2", len(s.ByAgent))
	}
	top := s.ByAgent[0]
	if top.AgentID != "a" || top.Runs != 3 || top.Errors != 1 {
		t.Errorf("top agent = %+v", top)
	}
	if top.AvgDurationMs != 200 {
		t.Errorf("avg duration = %v, want 200", top.AvgDurationMs)
	}
}

func TestMemStoreSummaryEmpty(t *testing.T) {
	m := NewMemStore()
	s, err := m.Summary(context.Background(), time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalRuns != 0 || s.SuccessRate != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}
