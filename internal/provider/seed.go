package provider

import (
	"time"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/schedule"
)

// seed populates the provider with the console's demo data set.
func (m *Memory) seed(reg *catalog.Registry) {
	base := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

	for _, i := range reg.All() {
		m.integrations[i.Name] = Integration{Name: i.Name, Icon: i.Icon, Category: i.Category}
	}
	for _, name := range []string{"GitHub", "Slack", "Notion", "Linear"} {
		i := m.integrations[name]
		i.Connected = true
		i.ConnectedAt = base.AddDate(0, -2, 0)
		m.integrations[name] = i
	}

	agents := []Agent{
		{
			ID:           "agent-support-triage",
			Name:         "Support Triage",
			Description:  "Classifies inbound tickets and routes them to the right queue.",
			Status:       "active",
			Model:        "claude-sonnet-4-5",
			Integrations: []string{"Zendesk", "Slack"},
			Trigger:      Trigger{Cron: "0 8 * * *", Timezone: "America/New_York"},
			LastRunAt:    base.Add(-2 * time.Hour),
		},
		{
			ID:           "agent-standup-digest",
			Name:         "Standup Digest",
			Description:  "Posts a morning summary of open pull requests to Slack.",
			Status:       "active",
			Model:        "claude-sonnet-4-5",
			Integrations: []string{"GitHub", "Slack"},
			Trigger:      Trigger{Cron: "0 8 * * 1", Timezone: "America/New_York"},
			LastRunAt:    base.Add(-26 * time.Hour),
		},
		{
			ID:          "agent-pr-reviewer",
			Name:        "PR Reviewer",
			Description: "First-pass review comments on new pull requests.",
			Status:      "paused",
			Model:       "claude-opus-4-5",
			// Step syntax is outside what the summarizer covers, so this
			// agent exercises the raw-expression fallback in list views.
			Integrations: []string{"GitHub"},
			Trigger:      Trigger{Cron: "*/15 * * * *", Timezone: "UTC"},
		},
		{
			ID:           "agent-invoice-sync",
			Name:         "Invoice Sync",
			Description:  "Reconciles Stripe invoices against the CRM nightly.",
			Status:       "error",
			Model:        "claude-sonnet-4-5",
			Integrations: []string{"Stripe", "Salesforce"},
			Trigger:      Trigger{Cron: "0 2 * * *", Timezone: "UTC"},
			LastRunAt:    base.Add(-7 * time.Hour),
		},
		{
			ID:           "agent-kb-gardener",
			Name:         "Knowledge Base Gardener",
			Description:  "Flags stale Notion pages and proposes refreshed drafts.",
			Status:       "draft",
			Model:        "claude-haiku-4-5",
			Integrations: []string{"Notion"},
			Trigger:      Trigger{Cron: "0 6 1 * *", Timezone: "Europe/London"},
		},
	}
	for idx, a := range agents {
		a.Schedule = schedule.Summarize(a.Trigger.Cron)
		a.CreatedAt = base.AddDate(0, 0, -30+idx)
		m.agents[a.ID] = a
	}

	servers := []MCPServer{
		{
			ID:          "srv-github",
			Name:        "github-mcp",
			Description: "Issues, pull requests, and code search over the GitHub API.",
			Transport:   "http",
			Endpoint:    "https://mcp.internal/github",
			Status:      "online",
			Tools: []MCPTool{
				{Name: "search_issues", Description: "Search issues and pull requests"},
				{Name: "create_issue", Description: "Open a new issue"},
				{Name: "get_file", Description: "Fetch a file from a repository"},
			},
		},
		{
			ID:          "srv-postgres",
			Name:        "postgres-mcp",
			Description: "Read-only SQL over the analytics replica.",
			Transport:   "stdio",
			Status:      "online",
			Tools: []MCPTool{
				{Name: "run_query", Description: "Execute a read-only SQL query"},
				{Name: "list_tables", Description: "List tables and schemas"},
			},
		},
		{
			ID:          "srv-slack",
			Name:        "slack-mcp",
			Description: "Post and search messages across workspace channels.",
			Transport:   "sse",
			Endpoint:    "https://mcp.internal/slack",
			Status:      "offline",
			Tools: []MCPTool{
				{Name: "post_message", Description: "Post a message to a channel"},
				{Name: "search_messages", Description: "Search message history"},
			},
		},
	}
	for idx, s := range servers {
		s.CreatedAt = base.AddDate(0, 0, -20+idx)
		m.servers[s.ID] = s
	}

	m.members = []TeamMember{
		{ID: "member-1", Name: "Priya Raman", Email: "priya@example.com", Role: "owner", Status: "active", JoinedAt: base.AddDate(-1, 0, 0)},
		{ID: "member-2", Name: "Jordan Walsh", Email: "jordan@example.com", Role: "admin", Status: "active", JoinedAt: base.AddDate(0, -8, 0)},
		{ID: "member-3", Name: "Sam Iyer", Email: "sam@example.com", Role: "member", Status: "active", JoinedAt: base.AddDate(0, -5, 0)},
		{ID: "member-4", Name: "Alex Chen", Email: "alex@example.com", Role: "member", Status: "invited", JoinedAt: base.AddDate(0, 0, -3)},
	}

	m.org = Organization{
		Name:         "Acme Robotics",
		Plan:         "team",
		Seats:        10,
		BillingEmail: "billing@example.com",
		CreatedAt:    base.AddDate(-1, 0, 0),
	}

	m.keys["key-ci"] = APIKey{
		ID:         "key-ci",
		Name:       "CI pipeline",
		Prefix:     "atp_4f2a",
		CreatedAt:  base.AddDate(0, -6, 0),
		LastUsedAt: base.Add(-30 * time.Minute),
	}
	m.keys["key-staging"] = APIKey{
		ID:        "key-staging",
		Name:      "Staging console",
		Prefix:    "atp_9c1d",
		CreatedAt: base.AddDate(0, -1, 0),
	}
}
