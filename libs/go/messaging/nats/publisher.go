package messaging

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

// KeyHeader carries the partition key of a message, the recipient for
// notifications.
const KeyHeader = "Key"

// Publish sends data to subject and waits for the server to acknowledge the
// flush, bounded by ctx.
func (c *Client) Publish(ctx context.Context, subject, key string, data []byte) error {
	nc, err := c.Conn()
	if err != nil {
		return err
	}
	if !nc.IsConnected() {
		return nats.ErrConnectionClosed
	}

	msg := nats.NewMsg(subject)
	msg.Data = data
	if key != "" {
		msg.Header.Set(KeyHeader, key)
	}

	if err := nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	if err := nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush %s: %w", subject, err)
	}
	return nil
}

// Subscribe registers handler for subject. The returned function removes
// the subscription.
func (c *Client) Subscribe(subject string, handler func(data []byte)) (func() error, error) {
	nc, err := c.Conn()
	if err != nil {
		return nil, err
	}
	if !nc.IsConnected() {
		return nil, nats.ErrConnectionClosed
	}

	sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", subject, err)
	}
	return sub.Unsubscribe, nil
}
