package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	yaml := `
listen: ":9090"
auth_token: secret
sandbox:
  failure_rate: 0.25
`
	path := writeTemp(t, yaml)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("listen = %q, want %q", cfg.Listen, ":9090")
	}
	if cfg.AuthToken != "secret" {
		t.Errorf("auth_token = %q, want %q", cfg.AuthToken, "secret")
	}
	if cfg.Sandbox.FailureRate != 0.25 {
		t.Errorf("failure_rate = %v, want 0.25", cfg.Sandbox.FailureRate)
	}
}

func TestDefaultsApplied(t *testing.T) {
	path := writeTemp(t, "{}\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("default listen = %q, want %q", cfg.Listen, ":8080")
	}
	if cfg.Sandbox.FailureRate != 0.10 {
		t.Errorf("default failure_rate = %v, want 0.10", cfg.Sandbox.FailureRate)
	}
	if cfg.Sandbox.MinLatency != 150*time.Millisecond {
		t.Errorf("default min_latency = %v, want 150ms", cfg.Sandbox.MinLatency)
	}
	if cfg.Sandbox.MaxLatency != 900*time.Millisecond {
		t.Errorf("default max_latency = %v, want 900ms", cfg.Sandbox.MaxLatency)
	}
	if cfg.Relay.URL != "nats://localhost:4222" {
		t.Errorf("default relay url = %q", cfg.Relay.URL)
	}
	if cfg.Relay.MaxReconnects != -1 {
		t.Errorf("default relay max_reconnects = %d, want -1", cfg.Relay.MaxReconnects)
	}
}

func TestValidateRejectsBadFailureRate(t *testing.T) {
	path := writeTemp(t, "sandbox:\n  failure_rate: 1.5\n")
	if _, err := Load(path); err == nil {
		t.Error("expected an error for failure_rate > 1")
	}
}

func TestValidateRejectsInvertedLatency(t *testing.T) {
	path := writeTemp(t, "sandbox:\n  min_latency: 5s\n  max_latency: 1s\n")
	if _, err := Load(path); err == nil {
		t.Error("expected an error for min_latency > max_latency")
	}
}

func TestSaveRoundTrips(t *testing.T) {
	path := writeTemp(t, "listen: \":7070\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.AuthToken = "rotated"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("save error: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Listen != ":7070" || back.AuthToken != "rotated" {
		t.Errorf("round trip = %+v", back)
	}
}
