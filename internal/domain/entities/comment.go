package entities

import "time"

type Comment struct {
	ID        uint
	Content   string
	PostID    uint
	AuthorID  uint
	CreatedAt time.Time
}

func (c *Comment) CanBeDeletedBy(actorID uint, actorRole Role) bool {
	return actorRole == RoleAdmin || c.AuthorID == actorID
}
