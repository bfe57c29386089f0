package mapper

import (
	"blog-service/internal/application/common"
	"blog-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user == nil {
		return nil
	}
	return &common.UserResult{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func NewCategoryResultFromEntity(category *entities.Category) *common.CategoryResult {
	if category == nil {
		return nil
	}
	return &common.CategoryResult{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		PostCount:   category.PostCount,
	}
}

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	if post == nil {
		return nil
	}
	result := &common.PostResult{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
		LikesCount: post.LikesCount,
	}
	if post.Category != nil {
		result.Category = &common.PostCategory{
			ID:          post.Category.ID,
			Name:        post.Category.Name,
			Description: post.Category.Description,
		}
	}
	return result
}

func NewPostListResult(posts []*entities.Post, total int64) *common.PostListResult {
	result := &common.PostListResult{Posts: make([]*common.PostResult, 0, len(posts)), Total: total}
	for _, p := range posts {
		result.Posts = append(result.Posts, NewPostResultFromEntity(p))
	}
	return result
}

func NewCommentResultFromEntity(comment *entities.Comment) *common.CommentResult {
	return &common.CommentResult{
		ID:        comment.ID,
		Content:   comment.Content,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
	}
}

func NewBookmarkResultFromEntity(bookmark *entities.Bookmark) *common.BookmarkResult {
	return &common.BookmarkResult{
		ID:        bookmark.ID,
		UserID:    bookmark.UserID,
		PostID:    bookmark.PostID,
		PostTitle: bookmark.PostTitle,
		CreatedAt: bookmark.CreatedAt,
	}
}

func NewNotificationResultFromEntity(notification *entities.Notification) *common.NotificationResult {
	return &common.NotificationResult{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Content:   notification.Content,
		Type:      notification.Type,
		RelatedID: notification.RelatedID,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
