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

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	commentModel := CommentModel{
		Content:  comment.Content,
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&commentModel).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("post not found")
		}
		return fmt.Errorf("create comment: %w", err)
	}

	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*entities.Comment, error) {
	var commentModel CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return mapComment(&commentModel), nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uint, skip, limit int) ([]*entities.Comment, int64, error) {
	db := r.db.WithContext(ctx).Model(&CommentModel{}).Where("post_id = ?", postID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	var commentModels []CommentModel
	err := page(r.db.WithContext(ctx).Where("post_id = ?", postID), skip, limit).
		Order("created_at DESC").
		Order("id DESC").
		Find(&commentModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]*entities.Comment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, mapComment(&commentModels[i]))
	}
	return comments, total, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&CommentModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("comment not found")
	}
	return nil
}

func mapComment(commentModel *CommentModel) *entities.Comment {
	return &entities.Comment{
		ID:        commentModel.ID,
		Content:   commentModel.Content,
		PostID:    commentModel.PostID,
		AuthorID:  commentModel.AuthorID,
		CreatedAt: commentModel.CreatedAt,
	}
}
