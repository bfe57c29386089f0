package entities

import (
	"fmt"
	"time"
)

const NotificationTypePostLike = "post_like"

type Notification struct {
	ID        uint
	UserID    uint
	Content   string
	Type      string
	RelatedID *uint
	IsRead    bool
	CreatedAt time.Time
}

func NewNotification(userID uint, content, notificationType string, relatedID *uint) *Notification {
	return &Notification{
		UserID:    userID,
		Content:   content,
		Type:      notificationType,
		RelatedID: relatedID,
		CreatedAt: time.Now().UTC(),
	}
}

func LikeMessage(username string) string {
	return fmt.Sprintf("%s liked your post", username)
}
