package postgres

import (
	"context"
	"fmt"

	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"gorm.io/gorm"
)

const categoryNameTaken = "a category with this name already exists"

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	categoryModel := CategoryModel{
		Name:        category.Name,
		NameKey:     entities.NameKey(category.Name),
		Description: category.Description,
	}

	if err := r.db.WithContext(ctx).Create(&categoryModel).Error; err != nil {
		if isDuplicate(err) {
			return domain.Conflict(categoryNameTaken)
		}
		return fmt.Errorf("create category: %w", err)
	}

	category.ID = categoryModel.ID
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*entities.Category, error) {
	return r.findOne(ctx, "categories.id = ?", id)
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*entities.Category, error) {
	return r.findOne(ctx, "categories.name_key = ?", entities.NameKey(name))
}

func (r *CategoryRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.Category, error) {
	var categoryModel CategoryModel
	err := r.withPostCount(r.db.WithContext(ctx)).
		Where(query, args...).
		First(&categoryModel).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return mapCategory(&categoryModel), nil
}

func (r *CategoryRepository) List(ctx context.Context, skip, limit int) ([]*entities.Category, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&CategoryModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	var categoryModels []CategoryModel
	err := page(r.withPostCount(db), skip, limit).
		Order("categories.id").
		Find(&categoryModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]*entities.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, mapCategory(&categoryModels[i]))
	}
	return categories, total, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	res := r.db.WithContext(ctx).
		Model(&CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"name_key":    entities.NameKey(category.Name),
			"description": category.Description,
		})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return domain.Conflict(categoryNameTaken)
		}
		return fmt.Errorf("update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var posts int64
		if err := tx.Model(&PostModel{}).Where("category_id = ?", id).Count(&posts).Error; err != nil {
			return fmt.Errorf("count category posts: %w", err)
		}
		if posts > 0 {
			return domain.Conflict("cannot delete category with existing posts")
		}

		res := tx.Delete(&CategoryModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("category not found")
		}
		return nil
	})
	if err != nil && isForeignKeyViolation(err) {
		// a post was attached between the count and the delete
		return domain.Conflict("cannot delete category with existing posts")
	}
	return err
}

func (r *CategoryRepository) withPostCount(db *gorm.DB) *gorm.DB {
	return db.Model(&CategoryModel{}).
		Select("categories.*, (SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id) AS post_count")
}

func mapCategory(categoryModel *CategoryModel) *entities.Category {
	return &entities.Category{
		ID:          categoryModel.ID,
		Name:        categoryModel.Name,
		Description: categoryModel.Description,
		PostCount:   categoryModel.PostCount,
	}
}
