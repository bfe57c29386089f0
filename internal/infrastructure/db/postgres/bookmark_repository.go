package postgres

import (
	"context"
	"fmt"

	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) repositories.BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *entities.Bookmark) error {
	bookmarkModel := BookmarkModel{
		UserID: bookmark.UserID,
		PostID: bookmark.PostID,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&bookmarkModel).Error; err != nil {
		switch {
		case isDuplicate(err):
			return domain.Conflict("bookmark already exists")
		case isForeignKeyViolation(err):
			return domain.NotFound("post not found")
		}
		return fmt.Errorf("create bookmark: %w", err)
	}

	bookmark.ID = bookmarkModel.ID
	bookmark.CreatedAt = bookmarkModel.CreatedAt
	return nil
}

func (r *BookmarkRepository) FindByID(ctx context.Context, id uint) (*entities.Bookmark, error) {
	var bookmarkModel BookmarkModel
	if err := r.withTitle(r.db.WithContext(ctx)).Where("bookmarks.id = ?", id).First(&bookmarkModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}
	return mapBookmark(&bookmarkModel), nil
}

func (r *BookmarkRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&BookmarkModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return n > 0, nil
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Bookmark, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&BookmarkModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count bookmarks: %w", err)
	}

	var bookmarkModels []BookmarkModel
	err := page(r.withTitle(db), skip, limit).
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Order("bookmarks.id DESC").
		Find(&bookmarkModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list bookmarks: %w", err)
	}

	bookmarks := make([]*entities.Bookmark, 0, len(bookmarkModels))
	for i := range bookmarkModels {
		bookmarks = append(bookmarks, mapBookmark(&bookmarkModels[i]))
	}
	return bookmarks, total, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&BookmarkModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete bookmark: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("bookmark not found")
	}
	return nil
}

func (r *BookmarkRepository) withTitle(db *gorm.DB) *gorm.DB {
	return db.Model(&BookmarkModel{}).
		Select("bookmarks.*, posts.title AS post_title").
		Joins("JOIN posts ON posts.id = bookmarks.post_id")
}

func mapBookmark(bookmarkModel *BookmarkModel) *entities.Bookmark {
	return &entities.Bookmark{
		ID:        bookmarkModel.ID,
		UserID:    bookmarkModel.UserID,
		PostID:    bookmarkModel.PostID,
		PostTitle: bookmarkModel.PostTitle,
		CreatedAt: bookmarkModel.CreatedAt,
	}
}
