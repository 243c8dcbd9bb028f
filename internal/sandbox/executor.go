// Package sandbox is the MCP test console: it builds tools/call-shaped
// request/response payloads and simulates execution with configurable
// latency and injected failures. Nothing here touches a network; results
// are tagged success-or-error objects, never thrown errors.
package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
)

// DefaultFailureRate matches the test console's historical ~10% random
// failure injection.
const DefaultFailureRate = 0.10

// Result is a tagged execution outcome: exactly one of Response and
// Error is set, and DurationMs is always non-negative.
type Result struct {
	RequestID  string          `json:"request_id"`
	Server     string          `json:"server"`
	Tool       string          `json:"tool"`
	Request    json.RawMessage `json:"request"`
	Response   json.RawMessage `json:"response,omitempty"`
	Error      string          `json:"error,omitempty"`
	DurationMs int64           `json:"duration_ms"`
}

// OK reports whether the execution succeeded.
func (r Result) OK() bool {
	return r.Error == ""
}

// Executor simulates MCP tool calls against registered servers.
type Executor struct {
	rate       float64
	minLatency time.Duration
	maxLatency time.Duration

	mu  sync.Mutex
	rng *rand.Rand

	logger *slog.Logger
}

// NewExecutor creates an executor. rate is the injected failure
// probability in [0,1]; seed fixes the RNG for reproducible runs (0 seeds
// from the clock).
func NewExecutor(rate float64, seed int64, logger *slog.Logger) *Executor {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Executor{
		rate:       rate,
		minLatency: 150 * time.Millisecond,
		maxLatency: 900 * time.Millisecond,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger.With("component", "sandbox"),
	}
}

// SetLatencyRange overrides the simulated latency window. A zero max
// disables the wait entirely, which tests rely on.
func (e *Executor) SetLatencyRange(min, max time.Duration) {
	e.minLatency, e.maxLatency = min, max
}

// Execute simulates a tools/call against the given server. The tool must
// exist on the server; an unknown tool is a caller error, not a simulated
// failure. Cancellation of ctx aborts the simulated wait.
func (e *Executor) Execute(ctx context.Context, srv provider.MCPServer, tool string, args map[string]any) (Result, error) {
	var found *provider.MCPTool
	for i := range srv.Tools {
		if srv.Tools[i].Name == tool {
			found = &srv.Tools[i]
			break
		}
	}
	if found == nil {
		return Result{}, fmt.Errorf("server %q has no tool %q", srv.Name, tool)
	}

	if args == nil {
		args = map[string]any{}
	}
	id := uuid.New().String()
	request, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params": map[string]any{
			"name":      tool,
			"arguments": args,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	start := time.Now()
	if err := e.simulateLatency(ctx); err != nil {
		return Result{}, err
	}
	duration := time.Since(start).Milliseconds()

	result := Result{
		RequestID:  id,
		Server:     srv.Name,
		Tool:       tool,
		Request:    request,
		DurationMs: duration,
	}

	if e.roll() < e.rate {
		result.Error = fmt.Sprintf("tool %q failed: upstream returned an internal error", tool)
		e.logger.Warn("simulated tool failure", "server", srv.Name, "tool", tool, "duration_ms", duration)
		return result, nil
	}

	response, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"result": map[string]any{
			"content": []map[string]any{
				{
					"type": "text",
					"text": fmt.Sprintf("%s completed: %s", tool, found.Description),
				},
			},
			"isError": false,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal response: %w", err)
	}
	result.Response = response
	e.logger.Info("simulated tool call", "server", srv.Name, "tool", tool, "duration_ms", duration)
	return result, nil
}

func (e *Executor) simulateLatency(ctx context.Context) error {
	if e.maxLatency <= 0 {
		return nil
	}
	window := e.maxLatency - e.minLatency
	delay := e.minLatency
	if window > 0 {
		e.mu.Lock()
		delay += time.Duration(e.rng.Int63n(int64(window)))
		e.mu.Unlock()
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (e *Executor) roll() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}
