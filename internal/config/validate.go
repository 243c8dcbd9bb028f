package config

import "fmt"

func validate(cfg *Config) error {
	if cfg.Sandbox.FailureRate < 0 || cfg.Sandbox.FailureRate > 1 {
		return fmt.Errorf("config: sandbox failure_rate must be within [0, 1], got %v", cfg.Sandbox.FailureRate)
	}
	if cfg.Sandbox.MinLatency < 0 || cfg.Sandbox.MaxLatency < 0 {
		return fmt.Errorf("config: sandbox latencies must be non-negative")
	}
	if cfg.Sandbox.MinLatency > cfg.Sandbox.MaxLatency {
		return fmt.Errorf("config: sandbox min_latency %v exceeds max_latency %v", cfg.Sandbox.MinLatency, cfg.Sandbox.MaxLatency)
	}
	if cfg.Provider.Latency < 0 {
		return fmt.Errorf("config: provider latency must be non-negative")
	}
	if cfg.Relay.Enabled && cfg.Relay.URL == "" {
		return fmt.Errorf("config: relay enabled without a url")
	}
	return nil
}
