package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"billboard/internal/domain"
	"billboard/internal/logger"
	"billboard/internal/metrics"
	"billboard/internal/repository"
	"billboard/internal/validator"
)

// CommentService adds comments to submissions.
type CommentService struct {
	comments  repository.CommentRepository
	validator *validator.Validator
	timeout   time.Duration
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository, v *validator.Validator, timeout time.Duration) *CommentService {
	return &CommentService{comments: comments, validator: v, timeout: timeout}
}

// Add stores a comment by a signed-in caller.
func (s *CommentService) Add(ctx context.Context, identity domain.Identity, submissionID, content string) (*domain.Comment, error) {
	if identity.IsAnonymous() {
		return nil, domain.ErrUnauthorized
	}

	comment := &domain.Comment{
		ID:           uuid.New().String(),
		SubmissionID: submissionID,
		UserID:       identity.UserID,
		UserName:     s.validator.ClampDisplayName(identity.Name()),
		Content:      strings.TrimSpace(content),
	}
	if err := s.validator.ValidateComment(comment); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, storageErr("add comment", err)
	}

	metrics.CommentsCreated.Inc()
	logger.WithSubmissionID(submissionID).DebugContext(ctx, "Comment added")

	return comment, nil
}
