package provider

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/schedule"
)

// Memory is the seeded in-memory provider. All mutations are guarded by a
// single mutex; reads hand out copies. An optional fixed latency emulates
// a remote backend and aborts cleanly on context cancellation.
type Memory struct {
	mu           sync.RWMutex
	agents       map[string]Agent
	integrations map[string]Integration
	servers      map[string]MCPServer
	members      []TeamMember
	org          Organization
	keys         map[string]APIKey
	latency      time.Duration
	logger       *slog.Logger
}

// NewMemory builds a provider seeded from the catalog registry.
func NewMemory(reg *catalog.Registry, latency time.Duration, logger *slog.Logger) *Memory {
	m := &Memory{
		agents:       make(map[string]Agent),
		integrations: make(map[string]Integration),
		servers:      make(map[string]MCPServer),
		keys:         make(map[string]APIKey),
		latency:      latency,
		logger:       logger.With("component", "provider"),
	}
	m.seed(reg)
	return m
}

// wait emulates backend latency. Unlike a fire-and-forget timer it is
// tied to the caller's context, so teardown before completion is a no-op.
func (m *Memory) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *Memory) Agents(ctx context.Context) ([]Agent, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Agent, 0, len(m.agents))
	for _, a := range m.agents {
		out = append(out, copyAgent(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) Agent(ctx context.Context, id string) (Agent, error) {
	if err := m.wait(ctx); err != nil {
		return Agent{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.agents[id]
	if !ok {
		return Agent{}, ErrNotFound
	}
	return copyAgent(a), nil
}

func (m *Memory) CreateAgent(ctx context.Context, a Agent) (Agent, error) {
	if err := m.wait(ctx); err != nil {
		return Agent{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if _, exists := m.agents[a.ID]; exists {
		return Agent{}, ErrConflict
	}
	if a.Status == "" {
		a.Status = "draft"
	}
	a.Schedule = schedule.Summarize(a.Trigger.Cron)
	a.CreatedAt = time.Now().UTC()
	m.agents[a.ID] = copyAgent(a)
	m.logger.Info("agent created", "id", a.ID, "name", a.Name)
	return copyAgent(a), nil
}

func (m *Memory) UpdateAgentStatus(ctx context.Context, id, status string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.agents[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	m.agents[id] = a
	m.logger.Info("agent status changed", "id", id, "status", status)
	return nil
}

func (m *Memory) DeleteAgent(ctx context.Context, id string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.agents[id]; !ok {
		return ErrNotFound
	}
	delete(m.agents, id)
	m.logger.Info("agent deleted", "id", id)
	return nil
}

func (m *Memory) Integrations(ctx context.Context) ([]Integration, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Integration, 0, len(m.integrations))
	for _, i := range m.integrations {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) SetIntegrationConnected(ctx context.Context, name string, connected bool) (bool, error) {
	if err := m.wait(ctx); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.integrations[name]
	if !ok {
		return false, ErrNotFound
	}
	if i.Connected == connected {
		return false, nil
	}
	i.Connected = connected
	if connected {
		i.ConnectedAt = time.Now().UTC()
	} else {
		i.ConnectedAt = time.Time{}
	}
	m.integrations[name] = i
	m.logger.Info("integration connection changed", "name", name, "connected", connected)
	return true, nil
}

// ConnectedIntegrations returns the names of currently connected
// integrations, sorted. Used to exclude candidates from mention composing.
func (m *Memory) ConnectedIntegrations() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name, i := range m.integrations {
		if i.Connected {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (m *Memory) Servers(ctx context.Context) ([]MCPServer, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]MCPServer, 0, len(m.servers))
	for _, s := range m.servers {
		out = append(out, copyServer(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) Server(ctx context.Context, id string) (MCPServer, error) {
	if err := m.wait(ctx); err != nil {
		return MCPServer{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.servers[id]
	if !ok {
		return MCPServer{}, ErrNotFound
	}
	return copyServer(s), nil
}

func (m *Memory) CreateServer(ctx context.Context, s MCPServer) (MCPServer, error) {
	if err := m.wait(ctx); err != nil {
		return MCPServer{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if _, exists := m.servers[s.ID]; exists {
		return MCPServer{}, ErrConflict
	}
	if s.Status == "" {
		s.Status = "unknown"
	}
	s.CreatedAt = time.Now().UTC()
	m.servers[s.ID] = copyServer(s)
	m.logger.Info("mcp server registered", "id", s.ID, "name", s.Name)
	return copyServer(s), nil
}

func (m *Memory) DeleteServer(ctx context.Context, id string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.servers[id]; !ok {
		return ErrNotFound
	}
	delete(m.servers, id)
	m.logger.Info("mcp server removed", "id", id)
	return nil
}

func (m *Memory) Members(ctx context.Context) ([]TeamMember, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]TeamMember, len(m.members))
	copy(out, m.members)
	return out, nil
}

func (m *Memory) Organization(ctx context.Context) (Organization, error) {
	if err := m.wait(ctx); err != nil {
		return Organization{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.org, nil
}

func (m *Memory) Keys(ctx context.Context) ([]APIKey, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]APIKey, 0, len(m.keys))
	for _, k := range m.keys {
		k.Secret = "" // never re-expose secrets after creation
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) CreateKey(ctx context.Context, name string) (APIKey, error) {
	if err := m.wait(ctx); err != nil {
		return APIKey{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	secret := newSecret()
	k := APIKey{
		ID:        uuid.New().String(),
		Name:      name,
		Prefix:    secret[:8],
		Secret:    secret,
		CreatedAt: time.Now().UTC(),
	}
	stored := k
	stored.Secret = "" // only the creation response carries the secret
	m.keys[k.ID] = stored
	m.logger.Info("api key created", "id", k.ID, "name", name, "prefix", k.Prefix)
	return k, nil
}

func (m *Memory) DeleteKey(ctx context.Context, id string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.keys[id]; !ok {
		return ErrNotFound
	}
	delete(m.keys, id)
	m.logger.Info("api key revoked", "id", id)
	return nil
}

func newSecret() string {
	buf := make([]byte, 24)
	rand.Read(buf)
	return "atp_" + hex.EncodeToString(buf)
}

func copyAgent(a Agent) Agent {
	out := a
	out.Integrations = append([]string(nil), a.Integrations...)
	return out
}

func copyServer(s MCPServer) MCPServer {
	out := s
	out.Tools = append([]MCPTool(nil), s.Tools...)
	return out
}
