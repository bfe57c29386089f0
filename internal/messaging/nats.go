package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"blog-service/internal/application/interfaces"
	natsclient "blog-service/libs/go/messaging/nats"
)

const (
	DefaultTopic   = "notifications"
	defaultTimeout = 2 * time.Second
)

// NotificationBus publishes notification events on {topic}.{user_id}, keyed
// by the recipient.
type NotificationBus struct {
	client  *natsclient.Client
	topic   string
	timeout time.Duration
}

func NewNotificationBus(client *natsclient.Client, topic string, timeout time.Duration) *NotificationBus {
	if topic == "" {
		topic = DefaultTopic
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &NotificationBus{client: client, topic: topic, timeout: timeout}
}

func (b *NotificationBus) Subject(userID uint) string {
	return b.topic + "." + strconv.FormatUint(uint64(userID), 10)
}

func (b *NotificationBus) Publish(ctx context.Context, event interfaces.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	key := strconv.FormatUint(uint64(event.UserID), 10)
	return b.client.Publish(ctx, b.Subject(event.UserID), key, data)
}

func (b *NotificationBus) Subscribe(userID uint, handler func(payload []byte)) (func() error, error) {
	return b.client.Subscribe(b.Subject(userID), handler)
}
