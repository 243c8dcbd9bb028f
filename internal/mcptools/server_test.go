package mcptools

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/sandbox"
)

func testService(t *testing.T) *ConsoleService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := provider.NewMemory(catalog.NewRegistry(), 0, logger)
	exec := sandbox.NewExecutor(0, 1, logger)
	exec.SetLatencyRange(0, 0)
	return NewConsoleService(p, exec)
}

func TestListAgentsFiltersByStatus(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	_, all, err := svc.ListAgents(ctx, nil, ListAgentsInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all.Agents) != 5 {
		t.Fatalf("agents = %d, want 5", len(all.Agents))
	}

	_, paused, err := svc.ListAgents(ctx, nil, ListAgentsInput{Status: "paused"})
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range paused.Agents {
		if a.Status != "paused" {
			t.Errorf("filter leaked agent %q with status %q", a.Name, a.Status)
		}
	}
	if len(paused.Agents) != 1 {
		t.Errorf("paused agents = %d, want 1", len(paused.Agents))
	}
}

func TestExecuteToolSucceeds(t *testing.T) {
	svc := testService(t)

	_, out, err := svc.ExecuteTool(context.Background(), nil, ExecuteToolInput{
		ServerID: "srv-github",
		Tool:     "search_issues",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !out.OK || out.Error != "" {
		t.Errorf("zero failure rate produced an error: %+v", out)
	}
	if out.RequestID == "" || len(out.Response) == 0 {
		t.Errorf("incomplete output: %+v", out)
	}
}

func TestExecuteToolValidation(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, _, err := svc.ExecuteTool(ctx, nil, ExecuteToolInput{Tool: "x"}); err == nil {
		t.Error("expected an error for missing serverId")
	}
	_, _, err := svc.ExecuteTool(ctx, nil, ExecuteToolInput{ServerID: "srv-missing", Tool: "x"})
	if err == nil || !strings.Contains(err.Error(), "srv-missing") {
		t.Errorf("unknown server error = %v", err)
	}
}

func TestConsoleMCPServerToolsList(t *testing.T) {
	server := NewConsoleMCPServer(testService(t))

	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go server.Run(ctx, serverTransport)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "dev"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatal(err)
	}

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}

	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"list_agents", "list_servers", "execute_tool"} {
		if !names[want] {
			t.Errorf("missing tool %q in %v", want, names)
		}
	}
	if len(tools.Tools) != 3 {
		t.Errorf("tool count = %d, want 3", len(tools.Tools))
	}
}
