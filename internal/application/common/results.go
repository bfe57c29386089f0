package common

import (
	"time"

	"blog-service/internal/domain/entities"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   uint
	Username string
	Role     entities.Role
}

type UserResult struct {
	ID        uint          `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Role      entities.Role `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
}

type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CategoryResult struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	PostCount   int64   `json:"post_count"`
}

type CategoryListResult struct {
	Categories []*CategoryResult `json:"categories"`
	Total      int64             `json:"total"`
}

type PostCategory struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type PostResult struct {
	ID         uint          `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	AuthorID   uint          `json:"author_id"`
	CategoryID *uint         `json:"category_id"`
	Category   *PostCategory `json:"category"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  *time.Time    `json:"updated_at"`
	LikesCount int64         `json:"likes_count"`
}

type PostListResult struct {
	Posts []*PostResult `json:"posts"`
	Total int64         `json:"total"`
}

type CommentResult struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	PostID    uint      `json:"post_id"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentListResult struct {
	Comments []*CommentResult `json:"comments"`
	Total    int64            `json:"total"`
}

type BookmarkResult struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
	PostTitle string    `json:"post_title"`
	CreatedAt time.Time `json:"created_at"`
}

type BookmarkListResult struct {
	Bookmarks []*BookmarkResult `json:"bookmarks"`
	Total     int64             `json:"total"`
}

type NotificationResult struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	RelatedID *uint     `json:"related_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResult struct {
	Notifications []*NotificationResult `json:"notifications"`
	Total         int64                 `json:"total"`
}
