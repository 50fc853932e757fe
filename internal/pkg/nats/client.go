package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mototrack/mototrack/internal/pkg/logger"
)

const reconnectWait = 2 * time.Second

// Client wraps a NATS connection used to fan device alerts out to
// downstream consumers
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server. The connection reconnects
// indefinitely; alert delivery resumes once the broker is back.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("mototrack-dashboard"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS connection lost", logger.Err(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection restored", logger.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish sends a message to the specified subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Subscribe subscribes to a subject and returns a subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return sub, nil
}

// Close flushes pending publishes and closes the connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Flush()
		c.conn.Close()
	}
}
