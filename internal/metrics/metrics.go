package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
)

var (
	SectionRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "console_section_requests_total",
		Help: "API requests per dashboard section",
	}, []string{"section"})

	SearchQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "console_search_queries_total",
		Help: "List requests carrying a search query",
	})

	SandboxExecutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "console_sandbox_executions_total",
		Help: "Simulated tool executions by outcome",
	}, []string{"outcome"})

	MentionCommitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "console_mention_commits_total",
		Help: "Mentions committed through the composer",
	})

	IntegrationsConnected = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "console_integrations_connected",
		Help: "Currently connected integrations",
	})

	SSEClientsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "console_sse_clients_active",
		Help: "Active event-stream subscribers",
	})
)

func init() {
	prometheus.MustRegister(
		SectionRequestsTotal,
		SearchQueriesTotal,
		SandboxExecutionsTotal,
		MentionCommitsTotal,
		IntegrationsConnected,
		SSEClientsActive,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RegisterEventHandler wires metric updates to the event emitter.
func RegisterEventHandler(emitter *events.Emitter) {
	emitter.OnEvent(func(ev events.Event) {
		switch ev.Type {
		case events.ToolExecuted:
			SandboxExecutionsTotal.WithLabelValues(ev.Fields["outcome"]).Inc()
		case events.MentionCommitted:
			MentionCommitsTotal.Inc()
		case events.IntegrationConnected:
			IntegrationsConnected.Inc()
		case events.IntegrationDisconnected:
			IntegrationsConnected.Dec()
		}
	})
}
