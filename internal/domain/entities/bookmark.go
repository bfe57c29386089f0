package entities

import "time"

type Bookmark struct {
	ID        uint
	UserID    uint
	PostID    uint
	PostTitle string
	CreatedAt time.Time
}

// CanBeDeletedBy is owner only. Unlike posts and comments there is no admin
// override for bookmarks.
func (b *Bookmark) CanBeDeletedBy(actorID uint) bool {
	return b.UserID == actorID
}
