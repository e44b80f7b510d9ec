package service

import (
	"context"

	"billboard/internal/domain"
)

// CreateSubmissionInput is the caller supplied part of a new submission.
type CreateSubmissionInput struct {
	UserName string
	Content  string
	ImageURL *string
}

// SubmissionServiceInterface defines the interface for submission reads and posts.
// Used for dependency injection and mocking in tests.
type SubmissionServiceInterface interface {
	// Create posts a new submission. Anonymous callers are allowed.
	Create(ctx context.Context, identity domain.Identity, input CreateSubmissionInput) (*domain.SubmissionView, error)
	// Get assembles the view of one submission for viewerID.
	Get(ctx context.Context, id, viewerID string) (*domain.SubmissionView, []domain.FetchWarning, error)
	// List assembles the feed, newest first.
	List(ctx context.Context, viewerID string) ([]domain.SubmissionView, []domain.FetchWarning, error)
	// Leaderboard assembles the top limit submissions by net score.
	Leaderboard(ctx context.Context, viewerID string, limit int) ([]domain.SubmissionView, []domain.FetchWarning, error)
}

// VoteServiceInterface defines the interface for the vote toggle protocol.
type VoteServiceInterface interface {
	CastVote(ctx context.Context, submissionID string, identity domain.Identity, voteType domain.VoteType) (domain.VoteAction, error)
}

// CommentServiceInterface defines the interface for adding comments.
type CommentServiceInterface interface {
	Add(ctx context.Context, identity domain.Identity, submissionID, content string) (*domain.Comment, error)
}

// ImageServiceInterface defines the interface for image uploads.
type ImageServiceInterface interface {
	// Upload validates data and stores it, returning the public URL.
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
