package repositories

import (
	"context"

	"blog-service/internal/domain/entities"
)

// Find methods return (nil, nil) when no row matches.

type UserRepository interface {
	// Create fails with domain.ErrConflict when the username or email is taken.
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}

type CategoryRepository interface {
	// Create and Update fail with domain.ErrConflict on a case-insensitive
	// name clash.
	Create(ctx context.Context, category *entities.Category) error
	FindByID(ctx context.Context, id uint) (*entities.Category, error)
	FindByName(ctx context.Context, name string) (*entities.Category, error)
	List(ctx context.Context, skip, limit int) ([]*entities.Category, int64, error)
	Update(ctx context.Context, category *entities.Category) error
	// Delete fails with domain.ErrConflict while posts reference the category.
	Delete(ctx context.Context, id uint) error
}

type PostRepository interface {
	// Create fails with domain.ErrNotFound when the category vanished.
	Create(ctx context.Context, post *entities.Post) error
	FindByID(ctx context.Context, id uint) (*entities.Post, error)
	// FindByIDs returns the posts that still exist, in the order of ids.
	FindByIDs(ctx context.Context, ids []uint) ([]*entities.Post, error)
	List(ctx context.Context, filter entities.PostFilter, skip, limit int) ([]*entities.Post, int64, error)
	Update(ctx context.Context, post *entities.Post) error
	// Delete removes the post together with its likes, comments and bookmarks.
	Delete(ctx context.Context, id uint) error
	// ToggleLike flips the like membership of (postID, userID) and reports
	// whether the user likes the post afterwards.
	ToggleLike(ctx context.Context, postID, userID uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	FindByID(ctx context.Context, id uint) (*entities.Comment, error)
	ListByPost(ctx context.Context, postID uint, skip, limit int) ([]*entities.Comment, int64, error)
	Delete(ctx context.Context, id uint) error
}

type BookmarkRepository interface {
	// Create fails with domain.ErrConflict when the pair already exists.
	Create(ctx context.Context, bookmark *entities.Bookmark) error
	FindByID(ctx context.Context, id uint) (*entities.Bookmark, error)
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Bookmark, int64, error)
	Delete(ctx context.Context, id uint) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	FindByID(ctx context.Context, id uint) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Notification, int64, error)
	MarkRead(ctx context.Context, id uint) error
}
