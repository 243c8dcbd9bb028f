package store

import (
	"context"
	"time"
)

// SeedDemo fills an empty store with a plausible recent activity log so
// the activity and analytics sections have data on first boot.
func SeedDemo(ctx context.Context, s ActivityStore) error {
	now := time.Now().UTC()
	entries := []ActivityEntry{
		{AgentID: "agent-support-triage", AgentName: "Support Triage", Kind: "run", Status: "success", Message: "Triaged 14 tickets, 3 escalated", DurationMs: 42100, CreatedAt: now.Add(-2 * time.Hour)},
		{AgentID: "agent-support-triage", AgentName: "Support Triage", Kind: "run", Status: "success", Message: "Triaged 9 tickets, none escalated", DurationMs: 30800, CreatedAt: now.Add(-26 * time.Hour)},
		{AgentID: "agent-support-triage", AgentName: "Support Triage", Kind: "run", Status: "success", Message: "Triaged 17 tickets, 5 escalated", DurationMs: 51400, CreatedAt: now.Add(-50 * time.Hour)},
		{AgentID: "agent-standup-digest", AgentName: "Standup Digest", Kind: "run", Status: "success", Message: "Posted digest covering 12 open PRs", DurationMs: 18900, CreatedAt: now.Add(-28 * time.Hour)},
		{AgentID: "agent-standup-digest", AgentName: "Standup Digest", Kind: "tool", Tool: "post_message", Status: "success", Message: "Posted to #engineering", DurationMs: 640, CreatedAt: now.Add(-28 * time.Hour)},
		{AgentID: "agent-invoice-sync", AgentName: "Invoice Sync", Kind: "run", Status: "error", Message: "Stripe API rate limited after 214 invoices", DurationMs: 95300, CreatedAt: now.Add(-7 * time.Hour)},
		{AgentID: "agent-invoice-sync", AgentName: "Invoice Sync", Kind: "run", Status: "success", Message: "Reconciled 198 invoices", DurationMs: 88100, CreatedAt: now.Add(-31 * time.Hour)},
		{AgentID: "agent-pr-reviewer", AgentName: "PR Reviewer", Kind: "run", Status: "success", Message: "Reviewed 3 pull requests", DurationMs: 24500, CreatedAt: now.AddDate(0, 0, -4)},
		{AgentID: "agent-pr-reviewer", AgentName: "PR Reviewer", Kind: "tool", Tool: "search_issues", Status: "error", Message: "GitHub API returned 502", DurationMs: 1200, CreatedAt: now.AddDate(0, 0, -4)},
		{AgentID: "agent-kb-gardener", AgentName: "Knowledge Base Gardener", Kind: "run", Status: "running", Message: "Scanning 340 Notion pages", DurationMs: 0, CreatedAt: now.Add(-10 * time.Minute)},
	}
	for _, e := range entries {
		if err := s.Append(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
