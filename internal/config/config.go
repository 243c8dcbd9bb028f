package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/relay"
)

type Config struct {
	Listen      string       `yaml:"listen"`
	AuthToken   string       `yaml:"auth_token"`
	DatabaseURL string       `yaml:"database_url"`
	Provider    Provider     `yaml:"provider"`
	Sandbox     Sandbox      `yaml:"sandbox"`
	Relay       relay.Config `yaml:"relay"`
	MCP         MCP          `yaml:"mcp"`
}

// Provider configures the mock data provider.
type Provider struct {
	// Latency emulates a remote backend on every provider call.
	Latency time.Duration `yaml:"latency"`
}

// Sandbox configures the test console's simulated tool execution.
type Sandbox struct {
	FailureRate float64       `yaml:"failure_rate"`
	Seed        int64         `yaml:"seed"`
	MinLatency  time.Duration `yaml:"min_latency"`
	MaxLatency  time.Duration `yaml:"max_latency"`
}

// MCP configures the stdio MCP surface.
type MCP struct {
	Enabled bool `yaml:"enabled"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.Sandbox.FailureRate == 0 {
		cfg.Sandbox.FailureRate = 0.10
	}
	if cfg.Sandbox.MinLatency == 0 {
		cfg.Sandbox.MinLatency = 150 * time.Millisecond
	}
	if cfg.Sandbox.MaxLatency == 0 {
		cfg.Sandbox.MaxLatency = 900 * time.Millisecond
	}
	if cfg.Relay.URL == "" {
		cfg.Relay.URL = relay.DefaultConfig().URL
	}
	if cfg.Relay.ConnectTimeout == 0 {
		cfg.Relay.ConnectTimeout = relay.DefaultConfig().ConnectTimeout
	}
	if cfg.Relay.ReconnectWait == 0 {
		cfg.Relay.ReconnectWait = relay.DefaultConfig().ReconnectWait
	}
	if cfg.Relay.MaxReconnects == 0 {
		cfg.Relay.MaxReconnects = relay.DefaultConfig().MaxReconnects
	}
}

// Save writes the config back to disk, preserving API-driven changes.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
