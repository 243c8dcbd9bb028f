package relay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/subramanya1997/agentic-trust-platform-sub001/internal/events"
)

// Config holds the relay client configuration.
type Config struct {
	Enabled        bool          `yaml:"enabled"`
	URL            string        `yaml:"url"`
	Token          string        `yaml:"token"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ReconnectWait  time.Duration `yaml:"reconnect_wait"`
	MaxReconnects  int           `yaml:"max_reconnects"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		URL:            "nats://localhost:4222",
		ConnectTimeout: 5 * time.Second,
		ReconnectWait:  2 * time.Second,
		MaxReconnects:  -1, // infinite
	}
}

// Client is the NATS relay client.
type Client struct {
	nc     *nats.Conn
	source string
	logger *slog.Logger
}

// Connect creates a relay client and connects to NATS.
func Connect(cfg Config, source string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.Name(source),
		nats.Timeout(cfg.ConnectTimeout),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("relay disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("relay reconnected")
		}),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("relay connect: %w", err)
	}

	return &Client{
		nc:     nc,
		source: source,
		logger: logger.With("component", "relay"),
	}, nil
}

// Close drains and closes the connection.
func (c *Client) Close() {
	c.nc.Close()
}

// Publish wraps data in an envelope and publishes it on the subject.
func (c *Client) Publish(subject, eventType string, data any) error {
	env, err := NewEnvelope(eventType, c.source, data)
	if err != nil {
		return fmt.Errorf("build envelope: %w", err)
	}
	raw, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	return c.nc.Publish(subject, raw)
}

// Subscribe subscribes to a subject and calls the handler per envelope.
func (c *Client) Subscribe(subject string, handler func(Envelope)) (*nats.Subscription, error) {
	return c.nc.Subscribe(subject, func(msg *nats.Msg) {
		env, err := UnmarshalEnvelope(msg.Data)
		if err != nil {
			c.logger.Error("failed to unmarshal envelope", "subject", subject, "error", err)
			return
		}
		handler(env)
	})
}

// Bridge registers a handler on the emitter that republishes every
// console event onto the bus. Publish failures are logged, not
// propagated; the console never blocks on the relay.
func (c *Client) Bridge(emitter *events.Emitter) {
	emitter.OnEvent(func(ev events.Event) {
		subject := Subject(ev.Type, ev.Subject)
		if err := c.Publish(subject, ev.Type, ev); err != nil {
			c.logger.Error("failed to relay event", "subject", subject, "error", err)
		}
	})
}
