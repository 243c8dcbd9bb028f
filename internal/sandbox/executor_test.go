package sandbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testServer() provider.MCPServer {
	return provider.MCPServer{
		ID:   "srv-1",
		Name: "github-mcp",
		Tools: []provider.MCPTool{
			{Name: "search_issues", Description: "Search issues and pull requests"},
		},
	}
}

func testExecutor(rate float64) *Executor {
	e := NewExecutor(rate, 42, testLogger())
	e.SetLatencyRange(0, 0) // no simulated wait in tests
	return e
}

func TestExecuteSuccessTagging(t *testing.T) {
	e := testExecutor(0) // never fail
	res, err := e.Execute(context.Background(), testServer(), "search_issues", map[string]any{"q": "open"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if res.Response == nil || res.Error != "" {
		t.Errorf("success must set exactly response: %+v", res)
	}
	if res.DurationMs < 0 {
		t.Errorf("duration = %d, want >= 0", res.DurationMs)
	}
}

func TestExecuteFailureTagging(t *testing.T) {
	e := testExecutor(1) // always fail
	res, err := e.Execute(context.Background(), testServer(), "search_issues", nil)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if res.OK() {
		t.Fatal("expected an injected failure")
	}
	if res.Response != nil || res.Error == "" {
		t.Errorf("failure must set exactly error: %+v", res)
	}
	if res.DurationMs < 0 {
		t.Errorf("duration = %d, want >= 0", res.DurationMs)
	}
}

func TestExecuteNeverBothSet(t *testing.T) {
	e := testExecutor(0.5)
	for i := 0; i < 50; i++ {
		res, err := e.Execute(context.Background(), testServer(), "search_issues", nil)
		if err != nil {
			t.Fatalf("execute error: %v", err)
		}
		hasResponse := res.Response != nil
		hasError := res.Error != ""
		if hasResponse == hasError {
			t.Fatalf("exactly one of response/error must be set: response=%v error=%v", hasResponse, hasError)
		}
	}
}

func TestExecuteRequestShape(t *testing.T) {
	e := testExecutor(0)
	res, err := e.Execute(context.Background(), testServer(), "search_issues", map[string]any{"q": "bug"})
	if err != nil {
		t.Fatal(err)
	}

	var req struct {
		JSONRPC string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments"`
		} `json:"params"`
	}
	if err := json.Unmarshal(res.Request, &req); err != nil {
		t.Fatalf("request is not valid JSON: %v", err)
	}
	if req.JSONRPC != "2.0" || req.Method != "tools/call" {
		t.Errorf("request envelope = %+v", req)
	}
	if req.Params.Name != "search_issues" || req.Params.Arguments["q"] != "bug" {
		t.Errorf("request params = %+v", req.Params)
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	e := testExecutor(0)
	if _, err := e.Execute(context.Background(), testServer(), "no_such_tool", nil); err == nil {
		t.Error("unknown tool should be a real error, not a simulated failure")
	}
}

func TestExecuteHonorsCancellation(t *testing.T) {
	e := NewExecutor(0, 42, testLogger())
	e.SetLatencyRange(5*time.Second, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := e.Execute(ctx, testServer(), "search_issues", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled execution should return immediately")
	}
}
