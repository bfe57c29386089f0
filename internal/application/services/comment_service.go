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

type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	logger      zerolog.Logger
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	logger zerolog.Logger,
) interfaces.CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger.With().Str("component", "comment_service").Logger(),
	}
}

func (s *CommentService) CreateComment(ctx context.Context, postID uint, cmd *command.CreateCommentCommand, authorID uint) (*common.CommentResult, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		Content:  cmd.Content,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("comment_id", comment.ID).Uint("post_id", postID).Msg("comment created")
	return mapper.NewCommentResultFromEntity(comment), nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint, page query.Page) (*common.CommentListResult, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	page = page.Normalize()
	comments, total, err := s.commentRepo.ListByPost(ctx, postID, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}

	result := &common.CommentListResult{
		Comments: make([]*common.CommentResult, 0, len(comments)),
		Total:    total,
	}
	for _, c := range comments {
		result.Comments = append(result.Comments, mapper.NewCommentResultFromEntity(c))
	}
	return result, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint, actorID uint, actorRole entities.Role) error {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.NotFound("comment not found")
	}
	if !comment.CanBeDeletedBy(actorID, actorRole) {
		return domain.Forbidden("not authorized to delete this comment")
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Uint("comment_id", id).Uint("actor_id", actorID).Msg("comment deleted")
	return nil
}

func (s *CommentService) requirePost(ctx context.Context, postID uint) error {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound("post not found")
	}
	return nil
}
