package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"billboard/internal/domain"
	"billboard/internal/logger"
	"billboard/internal/metrics"
	"billboard/internal/repository"
)

// VoteService applies the vote toggle protocol for signed-in users.
type VoteService struct {
	votes   repository.VoteRepository
	timeout time.Duration
}

// NewVoteService creates a new VoteService. Each store call is bounded by timeout.
func NewVoteService(votes repository.VoteRepository, timeout time.Duration) *VoteService {
	return &VoteService{votes: votes, timeout: timeout}
}

// CastVote toggles the caller's vote on a submission and reports the transition taken.
// Input is rejected before the store is touched.
func (s *VoteService) CastVote(ctx context.Context, submissionID string, identity domain.Identity, voteType domain.VoteType) (domain.VoteAction, error) {
	if identity.IsAnonymous() {
		return "", domain.ErrUnauthorized
	}
	if !domain.IsValidVoteType(voteType) {
		return "", domain.NewValidationError("vote_type", "invalid_vote_type")
	}
	if _, err := uuid.Parse(submissionID); err != nil {
		return "", domain.NewValidationError("submission_id", "invalid_submission_id")
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	action, err := s.votes.CastVote(ctx, submissionID, identity.UserID, voteType)
	if err != nil {
		return "", storageErr("cast vote", err)
	}

	metrics.ObserveVote(string(action))
	logger.WithSubmissionID(submissionID).InfoContext(ctx, "Vote cast",
		slog.String("vote_type", string(voteType)),
		slog.String("action", string(action)))

	return action, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
