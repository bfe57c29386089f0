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
	"blog-service/internal/infrastructure"

	"github.com/rs/zerolog"
)

type PostService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	redisService *infrastructure.RedisService
	notifier     interfaces.NotificationService
	logger       zerolog.Logger
}

func NewPostService(
	postRepo repositories.PostRepository,
	categoryRepo repositories.CategoryRepository,
	redisService *infrastructure.RedisService,
	notifier interfaces.NotificationService,
	logger zerolog.Logger,
) interfaces.PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		redisService: redisService,
		notifier:     notifier,
		logger:       logger.With().Str("component", "post_service").Logger(),
	}
}

func (s *PostService) CreatePost(ctx context.Context, cmd *command.CreatePostCommand, authorID uint) (*common.PostResult, error) {
	categoryID := entities.NormalizeCategoryID(cmd.CategoryID)
	category, err := s.resolveCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	post := &entities.Post{
		Title:      cmd.Title,
		Content:    cmd.Content,
		AuthorID:   authorID,
		CategoryID: categoryID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	post.Category = category

	s.redisService.InvalidateAllPostsLists(ctx)
	s.redisService.PutPost(ctx, post)

	s.logger.Info().Uint("post_id", post.ID).Uint("author_id", authorID).Msg("post created")
	return mapper.NewPostResultFromEntity(post), nil
}

// GetPost always answers from the store. A cache hit only tells us the entry
// is warm; it is refreshed with the authoritative record.
func (s *PostService) GetPost(ctx context.Context, id uint) (*common.PostResult, error) {
	_, cached := s.redisService.GetPost(ctx, id)

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		if cached {
			s.redisService.InvalidatePost(ctx, id)
		}
		return nil, domain.NotFound("post not found")
	}

	s.redisService.PutPost(ctx, post)
	return mapper.NewPostResultFromEntity(post), nil
}

func (s *PostService) ListPosts(ctx context.Context, q *query.ListPostsQuery) (*common.PostListResult, error) {
	q.Page = q.Page.Normalize()
	key := infrastructure.PostsListKey(q.CacheFilters())

	if cached, ok := s.redisService.GetPostsList(ctx, key); ok {
		ids := make([]uint, 0, len(cached.Posts))
		for _, p := range cached.Posts {
			ids = append(ids, p.ID)
		}
		posts, err := s.postRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return mapper.NewPostListResult(posts, cached.Total), nil
	}

	posts, total, err := s.postRepo.List(ctx, q.Filter(), q.Skip, q.Limit)
	if err != nil {
		return nil, err
	}
	s.redisService.PutPostsList(ctx, key, posts, total)
	return mapper.NewPostListResult(posts, total), nil
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, cmd *command.UpdatePostCommand, actorID uint, actorRole entities.Role) (*common.PostResult, error) {
	post, err := s.findModifiable(ctx, id, actorID, actorRole, "not authorized to update this post")
	if err != nil {
		return nil, err
	}

	categoryID := entities.NormalizeCategoryID(cmd.CategoryID)
	if _, err := s.resolveCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	post.Title = cmd.Title
	post.Content = cmd.Content
	post.CategoryID = categoryID
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	updated, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("post not found")
	}
	s.redisService.PutPost(ctx, updated)

	s.logger.Info().Uint("post_id", id).Uint("actor_id", actorID).Msg("post updated")
	return mapper.NewPostResultFromEntity(updated), nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint, actorID uint, actorRole entities.Role) error {
	if _, err := s.findModifiable(ctx, id, actorID, actorRole, "not authorized to delete this post"); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Uint("post_id", id).Uint("actor_id", actorID).Msg("post deleted")
	return nil
}

// ToggleLike flips the actor's like on the post. Only the transition to
// liked notifies the author.
func (s *PostService) ToggleLike(ctx context.Context, id uint, actorID uint, actorUsername string) (*common.PostResult, error) {
	exists, err := s.postRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NotFound("post not found")
	}

	liked, err := s.postRepo.ToggleLike(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NotFound("post not found")
	}

	if liked {
		relatedID := post.ID
		err := s.notifier.Publish(ctx, post.AuthorID, entities.LikeMessage(actorUsername), entities.NotificationTypePostLike, &relatedID)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Debug().Uint("post_id", id).Uint("actor_id", actorID).Bool("liked", liked).Msg("like toggled")
	return mapper.NewPostResultFromEntity(post), nil
}

func (s *PostService) findModifiable(ctx context.Context, id, actorID uint, actorRole entities.Role, denied string) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NotFound("post not found")
	}
	if !post.CanBeModifiedBy(actorID, actorRole) {
		return nil, domain.Forbidden(denied)
	}
	return post, nil
}

func (s *PostService) resolveCategory(ctx context.Context, categoryID *uint) (*entities.Category, error) {
	if categoryID == nil {
		return nil, nil
	}
	category, err := s.categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFound("category not found")
	}
	return category, nil
}

func (s *PostService) invalidate(ctx context.Context, id uint) {
	s.redisService.InvalidatePost(ctx, id)
	s.redisService.InvalidateAllPostsLists(ctx)
}
