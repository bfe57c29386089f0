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

type BookmarkService struct {
	bookmarkRepo repositories.BookmarkRepository
	postRepo     repositories.PostRepository
	logger       zerolog.Logger
}

func NewBookmarkService(
	bookmarkRepo repositories.BookmarkRepository,
	postRepo repositories.PostRepository,
	logger zerolog.Logger,
) interfaces.BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		postRepo:     postRepo,
		logger:       logger.With().Str("component", "bookmark_service").Logger(),
	}
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, cmd *command.CreateBookmarkCommand, userID uint) (*common.BookmarkResult, error) {
	post, err := s.postRepo.FindByID(ctx, cmd.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NotFound("post not found")
	}

	exists, err := s.bookmarkRepo.Exists(ctx, userID, cmd.PostID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflict("bookmark already exists")
	}

	bookmark := &entities.Bookmark{UserID: userID, PostID: post.ID}
	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	bookmark.PostTitle = post.Title

	s.logger.Info().Uint("bookmark_id", bookmark.ID).Uint("user_id", userID).Uint("post_id", post.ID).Msg("bookmark created")
	return mapper.NewBookmarkResultFromEntity(bookmark), nil
}

func (s *BookmarkService) ListBookmarks(ctx context.Context, userID uint, page query.Page) (*common.BookmarkListResult, error) {
	page = page.Normalize()
	bookmarks, total, err := s.bookmarkRepo.ListByUser(ctx, userID, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}

	result := &common.BookmarkListResult{
		Bookmarks: make([]*common.BookmarkResult, 0, len(bookmarks)),
		Total:     total,
	}
	for _, b := range bookmarks {
		result.Bookmarks = append(result.Bookmarks, mapper.NewBookmarkResultFromEntity(b))
	}
	return result, nil
}

// DeleteBookmark is owner only, admins included.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, id uint, actorID uint) error {
	bookmark, err := s.bookmarkRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if bookmark == nil {
		return domain.NotFound("bookmark not found")
	}
	if !bookmark.CanBeDeletedBy(actorID) {
		return domain.Forbidden("not authorized to delete this bookmark")
	}

	if err := s.bookmarkRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Uint("bookmark_id", id).Uint("actor_id", actorID).Msg("bookmark deleted")
	return nil
}
