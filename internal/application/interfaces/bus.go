package interfaces

import "context"

// NotificationEvent is the payload published for every notification.
type NotificationEvent struct {
	UserID    uint   `json:"user_id"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	RelatedID *uint  `json:"related_id"`
}

type NotificationBus interface {
	Publish(ctx context.Context, event NotificationEvent) error
	Subscribe(userID uint, handler func(payload []byte)) (func() error, error)
}
