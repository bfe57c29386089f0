package postgres

import (
	"context"
	"fmt"
	"time"

	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	postModel := PostModel{
		Title:      post.Title,
		Content:    post.Content,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&postModel).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("category not found")
		}
		return fmt.Errorf("create post: %w", err)
	}

	post.ID = postModel.ID
	post.CreatedAt = postModel.CreatedAt
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uint) (*entities.Post, error) {
	var postModel PostModel
	err := r.withLikes(r.db.WithContext(ctx)).
		Preload("Category").
		Where("posts.id = ?", id).
		First(&postModel).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mapPost(&postModel), nil
}

func (r *PostRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}

	var postModels []PostModel
	err := r.withLikes(r.db.WithContext(ctx)).
		Preload("Category").
		Where("posts.id IN ?", ids).
		Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}

	byID := make(map[uint]*PostModel, len(postModels))
	for i := range postModels {
		byID[postModels[i].ID] = &postModels[i]
	}
	posts := make([]*entities.Post, 0, len(postModels))
	for _, id := range ids {
		if postModel, ok := byID[id]; ok {
			posts = append(posts, mapPost(postModel))
		}
	}
	return posts, nil
}

func (r *PostRepository) List(ctx context.Context, filter entities.PostFilter, skip, limit int) ([]*entities.Post, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := applyPostFilter(db.Model(&PostModel{}), filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	var postModels []PostModel
	err := page(applyPostFilter(r.withLikes(db), filter), skip, limit).
		Preload("Category").
		Order("posts.created_at DESC").
		Order("posts.id DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]*entities.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, mapPost(&postModels[i]))
	}
	return posts, total, nil
}

func (r *PostRepository) Update(ctx context.Context, post *entities.Post) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":       post.Title,
			"content":     post.Content,
			"category_id": post.CategoryID,
			"updated_at":  now,
		})
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return domain.NotFound("category not found")
		}
		return fmt.Errorf("update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("post not found")
	}
	post.UpdatedAt = &now
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&PostLikeModel{}).Error; err != nil {
			return fmt.Errorf("delete post likes: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
			return fmt.Errorf("delete post comments: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&BookmarkModel{}).Error; err != nil {
			return fmt.Errorf("delete post bookmarks: %w", err)
		}

		res := tx.Delete(&PostModel{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete post: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("post not found")
		}
		return nil
	})
}

func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&PostLikeModel{})
		if res.Error != nil {
			return fmt.Errorf("remove like: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		// Concurrent toggles by the same user collapse on the composite key.
		res = tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&PostLikeModel{PostID: postID, UserID: userID})
		if res.Error != nil {
			if isForeignKeyViolation(res.Error) {
				return domain.NotFound("user not found")
			}
			return fmt.Errorf("add like: %w", res.Error)
		}
		liked = res.RowsAffected > 0
		return nil
	})
	return liked, err
}

func (r *PostRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&PostModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check post: %w", err)
	}
	return n > 0, nil
}

func (r *PostRepository) withLikes(db *gorm.DB) *gorm.DB {
	return db.Model(&PostModel{}).
		Select("posts.*, (SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) AS likes_count")
}

func applyPostFilter(db *gorm.DB, filter entities.PostFilter) *gorm.DB {
	if filter.CategoryID != nil {
		db = db.Where("posts.category_id = ?", *filter.CategoryID)
	}
	if filter.AuthorID != nil {
		db = db.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.StartDate != nil {
		db = db.Where("posts.created_at >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		db = db.Where("posts.created_at <= ?", filter.EndDate.UTC())
	}
	return db
}

func mapPost(postModel *PostModel) *entities.Post {
	post := &entities.Post{
		ID:         postModel.ID,
		Title:      postModel.Title,
		Content:    postModel.Content,
		AuthorID:   postModel.AuthorID,
		CategoryID: postModel.CategoryID,
		CreatedAt:  postModel.CreatedAt,
		UpdatedAt:  postModel.UpdatedAt,
		LikesCount: postModel.LikesCount,
	}
	if postModel.Category != nil {
		post.Category = mapCategory(postModel.Category)
	}
	return post
}
