package messaging

import (
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Client is a process wide NATS connection. The connection is opened on
// first use and shared by every caller afterwards.
type Client struct {
	url    string
	name   string
	logger zerolog.Logger

	once sync.Once
	mu   sync.Mutex
	nc   *nats.Conn
	err  error
}

func NewClient(url, name string, logger zerolog.Logger) *Client {
	if url == "" {
		url = nats.DefaultURL
	}
	return &Client{
		url:    url,
		name:   name,
		logger: logger.With().Str("component", "nats").Logger(),
	}
}

// Conn returns the shared connection, connecting on the first call. With
// RetryOnFailedConnect the returned connection keeps trying in the
// background when the server is down at startup.
func (c *Client) Conn() (*nats.Conn, error) {
	c.once.Do(func() {
		opts := []nats.Option{
			nats.Name(c.name),
			nats.Timeout(5 * time.Second),
			nats.ReconnectWait(1 * time.Second),
			nats.MaxReconnects(-1),
			nats.RetryOnFailedConnect(true),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				c.logger.Warn().Err(err).Msg("nats disconnected")
			}),
			nats.ReconnectHandler(func(_ *nats.Conn) {
				c.logger.Info().Msg("nats reconnected")
			}),
			nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
				c.logger.Error().Err(err).Msg("nats error")
			}),
			nats.DrainTimeout(10 * time.Second),
		}

		nc, err := nats.Connect(c.url, opts...)

		c.mu.Lock()
		c.nc, c.err = nc, err
		c.mu.Unlock()

		if err != nil {
			c.logger.Error().Err(err).Str("url", c.url).Msg("failed to connect to nats")
			return
		}
		c.logger.Info().Str("url", c.url).Msg("nats connection opened")
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nc, c.err
}

// Close drains the connection if it was ever opened.
func (c *Client) Close() {
	c.mu.Lock()
	nc := c.nc
	c.mu.Unlock()

	if nc == nil || nc.IsClosed() {
		return
	}
	if err := nc.Drain(); err != nil {
		nc.Close()
	}
	c.logger.Info().Msg("nats connection closed")
}
