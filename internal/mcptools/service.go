// Package mcptools exposes the console's own data over MCP, so an agent
// can browse the registry and drive the test console through structured
// tool calls instead of the HTTP API.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/sandbox"
)

// ConsoleService holds the backends the MCP tool handlers call into.
type ConsoleService struct {
	providers provider.Provider
	exec      *sandbox.Executor
}

// NewConsoleService creates a ConsoleService.
func NewConsoleService(p provider.Provider, exec *sandbox.Executor) *ConsoleService {
	return &ConsoleService{providers: p, exec: exec}
}

// ListAgentsInput is the input for the list_agents MCP tool.
type ListAgentsInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter by agent status: active, paused, draft, error"`
}

// ListAgentsOutput is the result of the list_agents MCP tool.
type ListAgentsOutput struct {
	Agents []provider.Agent `json:"agents"`
}

// ListServersInput is the input for the list_servers MCP tool.
type ListServersInput struct{}

// ListServersOutput is the result of the list_servers MCP tool.
type ListServersOutput struct {
	Servers []provider.MCPServer `json:"servers"`
}

// ExecuteToolInput is the input for the execute_tool MCP tool.
type ExecuteToolInput struct {
	ServerID  string         `json:"serverId" jsonschema:"ID of the registered MCP server"`
	Tool      string         `json:"tool" jsonschema:"name of the tool to execute"`
	Arguments map[string]any `json:"arguments,omitempty" jsonschema:"arguments passed to the tool"`
}

// ExecuteToolOutput is the result of the execute_tool MCP tool.
type ExecuteToolOutput struct {
	RequestID  string          `json:"requestId"`
	OK         bool            `json:"ok"`
	Response   json.RawMessage `json:"response,omitempty"`
	Error      string          `json:"error,omitempty"`
	DurationMs int64           `json:"durationMs"`
}

// ListAgents returns configured agents, optionally filtered by status.
func (s *ConsoleService) ListAgents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListAgentsInput,
) (*mcp.CallToolResult, ListAgentsOutput, error) {
	agents, err := s.providers.Agents(ctx)
	if err != nil {
		return nil, ListAgentsOutput{}, err
	}
	if input.Status == "" {
		return nil, ListAgentsOutput{Agents: agents}, nil
	}

	filtered := make([]provider.Agent, 0, len(agents))
	for _, a := range agents {
		if a.Status == input.Status {
			filtered = append(filtered, a)
		}
	}
	return nil, ListAgentsOutput{Agents: filtered}, nil
}

// ListServers returns every registered MCP server with its tools.
func (s *ConsoleService) ListServers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListServersInput,
) (*mcp.CallToolResult, ListServersOutput, error) {
	servers, err := s.providers.Servers(ctx)
	if err != nil {
		return nil, ListServersOutput{}, err
	}
	return nil, ListServersOutput{Servers: servers}, nil
}

// ExecuteTool runs a simulated tools/call through the sandbox.
func (s *ConsoleService) ExecuteTool(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExecuteToolInput,
) (*mcp.CallToolResult, ExecuteToolOutput, error) {
	if input.ServerID == "" {
		return nil, ExecuteToolOutput{}, fmt.Errorf("serverId is required")
	}
	if input.Tool == "" {
		return nil, ExecuteToolOutput{}, fmt.Errorf("tool is required")
	}

	srv, err := s.providers.Server(ctx, input.ServerID)
	if err != nil {
		return nil, ExecuteToolOutput{}, fmt.Errorf("server %s: %w", input.ServerID, err)
	}

	result, err := s.exec.Execute(ctx, srv, input.Tool, input.Arguments)
	if err != nil {
		return nil, ExecuteToolOutput{}, err
	}
	return nil, ExecuteToolOutput{
		RequestID:  result.RequestID,
		OK:         result.OK(),
		Response:   result.Response,
		Error:      result.Error,
		DurationMs: result.DurationMs,
	}, nil
}
