package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewConsoleMCPServer creates an MCP server with the console tools registered.
func NewConsoleMCPServer(svc *ConsoleService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "atp-console",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_agents",
		Description: "List configured agents with status, schedule, and integrations. Optionally filter by status.",
	}, svc.ListAgents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_servers",
		Description: "List registered MCP servers and the tools each one exposes.",
	}, svc.ListServers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "execute_tool",
		Description: "Run a tool on a registered server through the test console. Execution is simulated with realistic latency and a configurable failure rate.",
	}, svc.ExecuteTool)

	return server
}

// RunStdio serves the console tools on stdio transport, blocking until
// stdin closes or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
