package repository

import (
	"context"

	"billboard/internal/domain"
)

// SubmissionRepository defines methods for submission data access.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	// List returns submissions newest first. A non-positive limit returns all rows.
	List(ctx context.Context, limit int) ([]domain.Submission, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListBySubmissionIDs(ctx context.Context, submissionIDs []string) ([]domain.Comment, error)
}

// VoteRepository defines methods for vote ledger access.
type VoteRepository interface {
	// CastVote applies the toggle protocol for one (submission, user) pair atomically.
	CastVote(ctx context.Context, submissionID, userID string, voteType domain.VoteType) (domain.VoteAction, error)
	ListBySubmissionIDs(ctx context.Context, submissionIDs []string) ([]domain.Vote, error)
}
