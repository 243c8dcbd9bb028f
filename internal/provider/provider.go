// Package provider is the data seam between the console's handlers and
// whatever backs them. The console ships with a seeded in-memory provider;
// a real backend implements the same interface without touching view code.
package provider

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a record with the same identity exists.
var ErrConflict = errors.New("already exists")

// Trigger is an agent's schedule: a cron expression plus the timezone
// label shown next to it. The label is display-only; no time arithmetic
// depends on it.
type Trigger struct {
	Cron     string `json:"cron" yaml:"cron"`
	Timezone string `json:"timezone" yaml:"timezone"`
}

// Agent is the console's view of a configured agent.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Status       string    `json:"status"` // "active", "paused", "draft", "error"
	Model        string    `json:"model"`
	Instructions string    `json:"instructions"` // HTML with rendered mentions
	Integrations []string  `json:"integrations"`
	Trigger      Trigger   `json:"trigger"`
	Schedule     string    `json:"schedule"` // human-readable trigger summary
	CreatedAt    time.Time `json:"created_at"`
	LastRunAt    time.Time `json:"last_run_at,omitempty"`
}

// Integration is a catalog entry plus its connection state for this
// organization.
type Integration struct {
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	Connected   bool      `json:"connected"`
	ConnectedAt time.Time `json:"connected_at,omitempty"`
}

// MCPTool is one tool exposed by a registered MCP server.
type MCPTool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MCPServer is a registry entry for an MCP server.
type MCPServer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Transport   string    `json:"transport"` // "stdio", "http", "sse"
	Endpoint    string    `json:"endpoint,omitempty"`
	Status      string    `json:"status"` // "online", "offline", "unknown"
	Tools       []MCPTool `json:"tools"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamMember is one member of the organization.
type TeamMember struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`   // "owner", "admin", "member"
	Status   string    `json:"status"` // "active", "invited"
	JoinedAt time.Time `json:"joined_at"`
}

// Organization is the org-level settings record.
type Organization struct {
	Name         string    `json:"name"`
	Plan         string    `json:"plan"`
	Seats        int       `json:"seats"`
	BillingEmail string    `json:"billing_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// APIKey is a console API key. Secret is only populated on creation.
type APIKey struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Prefix     string    `json:"prefix"`
	Secret     string    `json:"secret,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at,omitempty"`
}

// Provider serves every dashboard section. Implementations must return
// copies; callers own what they receive.
type Provider interface {
	Agents(ctx context.Context) ([]Agent, error)
	Agent(ctx context.Context, id string) (Agent, error)
	CreateAgent(ctx context.Context, a Agent) (Agent, error)
	UpdateAgentStatus(ctx context.Context, id, status string) error
	DeleteAgent(ctx context.Context, id string) error

	Integrations(ctx context.Context) ([]Integration, error)
	// SetIntegrationConnected reports whether the call actually changed
	// the connection state, so callers can emit events on transitions only.
	SetIntegrationConnected(ctx context.Context, name string, connected bool) (bool, error)

	Servers(ctx context.Context) ([]MCPServer, error)
	Server(ctx context.Context, id string) (MCPServer, error)
	CreateServer(ctx context.Context, s MCPServer) (MCPServer, error)
	DeleteServer(ctx context.Context, id string) error

	Members(ctx context.Context) ([]TeamMember, error)
	Organization(ctx context.Context) (Organization, error)

	Keys(ctx context.Context) ([]APIKey, error)
	CreateKey(ctx context.Context, name string) (APIKey, error)
	DeleteKey(ctx context.Context, id string) error
}
