package interfaces

import (
	"context"

	"blog-service/internal/application/command"
	"blog-service/internal/application/common"
	"blog-service/internal/application/query"
	"blog-service/internal/domain/entities"
)

type AuthService interface {
	Register(ctx context.Context, cmd *command.RegisterUserCommand) (*common.UserResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*common.TokenResult, error)
	// Authenticate resolves a bearer token to the identity behind it.
	Authenticate(ctx context.Context, token string) (*common.Identity, error)
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

type PostService interface {
	CreatePost(ctx context.Context, cmd *command.CreatePostCommand, authorID uint) (*common.PostResult, error)
	GetPost(ctx context.Context, id uint) (*common.PostResult, error)
	ListPosts(ctx context.Context, q *query.ListPostsQuery) (*common.PostListResult, error)
	UpdatePost(ctx context.Context, id uint, cmd *command.UpdatePostCommand, actorID uint, actorRole entities.Role) (*common.PostResult, error)
	DeletePost(ctx context.Context, id uint, actorID uint, actorRole entities.Role) error
	ToggleLike(ctx context.Context, id uint, actorID uint, actorUsername string) (*common.PostResult, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, cmd *command.CreateCategoryCommand) (*common.CategoryResult, error)
	ListCategories(ctx context.Context, page query.Page) (*common.CategoryListResult, error)
	GetCategory(ctx context.Context, id uint) (*common.CategoryResult, error)
	UpdateCategory(ctx context.Context, id uint, cmd *command.UpdateCategoryCommand) (*common.CategoryResult, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type CommentService interface {
	CreateComment(ctx context.Context, postID uint, cmd *command.CreateCommentCommand, authorID uint) (*common.CommentResult, error)
	ListComments(ctx context.Context, postID uint, page query.Page) (*common.CommentListResult, error)
	DeleteComment(ctx context.Context, id uint, actorID uint, actorRole entities.Role) error
}

type BookmarkService interface {
	CreateBookmark(ctx context.Context, cmd *command.CreateBookmarkCommand, userID uint) (*common.BookmarkResult, error)
	ListBookmarks(ctx context.Context, userID uint, page query.Page) (*common.BookmarkListResult, error)
	DeleteBookmark(ctx context.Context, id uint, actorID uint) error
}

type NotificationService interface {
	// Publish sends the notification on the bus, best effort, and appends it
	// to the notification log. Only log failures are returned.
	Publish(ctx context.Context, userID uint, message, notificationType string, relatedID *uint) error
	ListNotifications(ctx context.Context, userID uint, page query.Page) (*common.NotificationListResult, error)
	MarkRead(ctx context.Context, id uint, userID uint) (*common.NotificationResult, error)
	// Stream forwards live notifications for userID to fn until the returned
	// function is called.
	Stream(userID uint, fn func(payload []byte)) (func() error, error)
}
