package services

import (
	"context"

	"blog-service/internal/application/command"
	"blog-service/internal/application/common"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/application/mapper"
	"blog-service/internal/application/query"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"github.com/rs/zerolog"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	logger       zerolog.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, logger zerolog.Logger) interfaces.CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("component", "category_service").Logger(),
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, cmd *command.CreateCategoryCommand) (*common.CategoryResult, error) {
	existing, err := s.categoryRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("a category with this name already exists")
	}

	category := &entities.Category{Name: cmd.Name, Description: cmd.Description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return mapper.NewCategoryResultFromEntity(category), nil
}

func (s *CategoryService) ListCategories(ctx context.Context, page query.Page) (*common.CategoryListResult, error) {
	page = page.Normalize()
	categories, total, err := s.categoryRepo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}

	result := &common.CategoryListResult{
		Categories: make([]*common.CategoryResult, 0, len(categories)),
		Total:      total,
	}
	for _, c := range categories {
		result.Categories = append(result.Categories, mapper.NewCategoryResultFromEntity(c))
	}
	return result, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*common.CategoryResult, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.NewCategoryResultFromEntity(category), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, cmd *command.UpdateCategoryCommand) (*common.CategoryResult, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.Conflict("a category with this name already exists")
	}

	category.Name = cmd.Name
	category.Description = cmd.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("category_id", id).Msg("category updated")
	return mapper.NewCategoryResultFromEntity(category), nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Uint("category_id", id).Msg("category deleted")
	return nil
}

func (s *CategoryService) find(ctx context.Context, id uint) (*entities.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("category not found")
	}
	return category, nil
}
