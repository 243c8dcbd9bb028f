package main

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"
)

// Stdout carries JSON-RPC frames when the MCP stdio surface is enabled,
// so every log line must land on stderr.
func TestLoggerWritesToStderr(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	newLogger().Info("consoled started", "listen", ":8080")
	w.Close()
	os.Stderr = orig

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		t.Fatalf("no log line arrived on stderr: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["msg"] != "consoled started" {
		t.Errorf("msg = %v, want %q", record["msg"], "consoled started")
	}
}
