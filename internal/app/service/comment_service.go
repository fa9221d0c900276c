package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"problem_app/internal/common"
	"problem_app/internal/domain/model"
	"problem_app/internal/domain/repository"
	"problem_app/internal/platform/metrics"
)

const maxCommentLength = 2000

type CommentService struct {
	commentRepo repository.CommentRepository
	renderer    *Renderer
	now         func() time.Time
}

func NewCommentService(commentRepo repository.CommentRepository, renderer *Renderer) *CommentService {
	return &CommentService{commentRepo: commentRepo, renderer: renderer, now: time.Now}
}

// Author identifies who posts a comment. It comes from the verified token.
type Author struct {
	UserID   string
	Username string
}

func (s *CommentService) ListComments(ctx context.Context) ([]model.Comment, error) {
	comments, err := s.commentRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *CommentService) CreateComment(ctx context.Context, author Author, content string) (*model.Comment, error) {
	content = s.renderer.PlainText(content)
	if content == "" {
		return nil, common.Validationf("Comment content is required")
	}
	if len([]rune(content)) > maxCommentLength {
		return nil, common.Validationf("Comment must be at most %d characters", maxCommentLength)
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		Content:   content,
		Username:  author.Username,
		UserID:    author.UserID,
		CreatedAt: s.now().UTC(),
		IsActive:  true,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	metrics.CommentsCreatedTotal.Inc()
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id string) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return common.Wrapf(common.ErrNotFound, "Comment not found")
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
