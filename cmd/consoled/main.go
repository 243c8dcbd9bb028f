package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/catalog"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/config"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/console"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/mcptools"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/metrics"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/provider"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/relay"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/sandbox"
	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/store"
)

// newLogger builds the daemon logger on stderr. Stdout is reserved for
// the MCP stdio transport when mcp.enabled is set; log lines on it would
// corrupt the protocol stream.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func main() {
	configPath := flag.String("config", "./console.yaml", "path to config file")
	flag.Parse()

	logger := newLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "listen", cfg.Listen, "relay", cfg.Relay.Enabled, "mcp", cfg.MCP.Enabled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Activity store: Postgres when configured, in-memory otherwise.
	var activity store.ActivityStore
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		if err := store.EnsureSchema(ctx, pg.Pool()); err != nil {
			logger.Error("failed to ensure schema", "error", err)
			os.Exit(1)
		}
		activity = pg
		logger.Info("activity store ready", "backend", "postgres")
	} else {
		mem := store.NewMemStore()
		if err := store.SeedDemo(ctx, mem); err != nil {
			logger.Error("failed to seed activity log", "error", err)
			os.Exit(1)
		}
		activity = mem
		logger.Info("activity store ready", "backend", "memory")
	}
	defer activity.Close()

	registry := catalog.NewRegistry()
	providers := provider.NewMemory(registry, cfg.Provider.Latency, logger)

	emitter := events.NewEmitter(logger)
	metrics.RegisterEventHandler(emitter)
	// The seed connects some integrations before any event fires; start
	// the gauge from the actual state.
	metrics.IntegrationsConnected.Set(float64(len(providers.ConnectedIntegrations())))

	if cfg.Relay.Enabled {
		client, err := relay.Connect(cfg.Relay, "consoled", logger)
		if err != nil {
			logger.Error("failed to connect to relay", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		client.Bridge(emitter)
		logger.Info("relay bridge active", "url", cfg.Relay.URL)
	}

	exec := sandbox.NewExecutor(cfg.Sandbox.FailureRate, cfg.Sandbox.Seed, logger)
	exec.SetLatencyRange(cfg.Sandbox.MinLatency, cfg.Sandbox.MaxLatency)

	srv := console.NewServer(providers, activity, exec, registry, emitter, cfg, logger)

	// Optional MCP surface on stdio, alongside the HTTP API.
	if cfg.MCP.Enabled {
		mcpServer := mcptools.NewConsoleMCPServer(mcptools.NewConsoleService(providers, exec))
		go func() {
			if err := mcptools.RunStdio(ctx, mcpServer); err != nil {
				logger.Error("mcp server stopped", "error", err)
			}
		}()
		logger.Info("mcp server listening on stdio")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(ctx, cfg.Listen)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("consoled stopped")
}
