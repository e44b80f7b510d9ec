package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"billboard/internal/domain"
	"billboard/internal/logger"
	"billboard/internal/metrics"
	"billboard/internal/repository"
	"billboard/internal/validator"
)

const (
	// DefaultFeedLimit caps the number of submissions in the feed.
	DefaultFeedLimit = 100
	// DefaultLeaderboardSize is the leaderboard length when none is requested.
	DefaultLeaderboardSize = 20
)

// SubmissionConfig holds the tunables of a SubmissionService.
type SubmissionConfig struct {
	FeedLimit       int
	LeaderboardSize int
	Timeout         time.Duration
}

// SubmissionService posts submissions and assembles their views.
type SubmissionService struct {
	submissions repository.SubmissionRepository
	comments    repository.CommentRepository
	votes       repository.VoteRepository
	validator   *validator.Validator
	cfg         SubmissionConfig
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	submissions repository.SubmissionRepository,
	comments repository.CommentRepository,
	votes repository.VoteRepository,
	v *validator.Validator,
	cfg SubmissionConfig,
) *SubmissionService {
	if cfg.FeedLimit <= 0 {
		cfg.FeedLimit = DefaultFeedLimit
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = DefaultLeaderboardSize
	}
	return &SubmissionService{
		submissions: submissions,
		comments:    comments,
		votes:       votes,
		validator:   v,
		cfg:         cfg,
	}
}

// Create posts a submission. Anonymous callers get a synthesized author id
// and must supply a display name.
func (s *SubmissionService) Create(ctx context.Context, identity domain.Identity, input CreateSubmissionInput) (*domain.SubmissionView, error) {
	submission := &domain.Submission{
		ID:       uuid.New().String(),
		UserName: strings.TrimSpace(input.UserName),
		Content:  strings.TrimSpace(input.Content),
	}
	if input.ImageURL != nil {
		imageURL := strings.TrimSpace(*input.ImageURL)
		if imageURL != "" {
			submission.ImageURL = &imageURL
		}
	}

	if identity.IsAnonymous() {
		submission.UserID = domain.NewAnonymousUserID()
	} else {
		submission.UserID = identity.UserID
		if submission.UserName == "" {
			submission.UserName = s.validator.ClampDisplayName(identity.Name())
		}
	}

	if err := s.validator.ValidateSubmission(submission); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, storageErr("create submission", err)
	}

	metrics.ObserveSubmissionCreated(identity.IsAnonymous())
	logger.WithSubmissionID(submission.ID).InfoContext(ctx, "Submission created",
		slog.Bool("anonymous", identity.IsAnonymous()),
		slog.Bool("has_image", submission.ImageURL != nil))

	view := domain.AssembleSubmissionView(*submission, nil, nil, identity.UserID)
	return &view, nil
}

// Get assembles one submission. Comment or vote fetch failures degrade the
// view and are reported as warnings instead of failing the call.
func (s *SubmissionService) Get(ctx context.Context, id, viewerID string) (*domain.SubmissionView, []domain.FetchWarning, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, domain.NewValidationError("id", "invalid_submission_id")
	}

	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, nil, storageErr("get submission", err)
	}
	if submission == nil {
		return nil, nil, domain.ErrNotFound
	}

	views, warnings := s.assemble(ctx, []domain.Submission{*submission}, viewerID)
	return &views[0], warnings, nil
}

// List assembles the feed, newest first.
func (s *SubmissionService) List(ctx context.Context, viewerID string) ([]domain.SubmissionView, []domain.FetchWarning, error) {
	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	submissions, err := s.submissions.List(ctx, s.cfg.FeedLimit)
	if err != nil {
		return nil, nil, storageErr("list submissions", err)
	}

	views, warnings := s.assemble(ctx, submissions, viewerID)
	return views, warnings, nil
}

// Leaderboard ranks every submission by net score and returns the top limit.
// A non-positive limit uses the configured leaderboard size. Ranking needs
// every vote; comments are only fetched for the submissions returned.
func (s *SubmissionService) Leaderboard(ctx context.Context, viewerID string, limit int) ([]domain.SubmissionView, []domain.FetchWarning, error) {
	if limit <= 0 {
		limit = s.cfg.LeaderboardSize
	}

	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	submissions, err := s.submissions.List(ctx, 0)
	if err != nil {
		return nil, nil, storageErr("list submissions", err)
	}
	if len(submissions) == 0 {
		return []domain.SubmissionView{}, nil, nil
	}

	votes, warnings := s.fetchVotes(ctx, submissionIDs(submissions), nil)

	scored := make([]domain.SubmissionView, 0, len(submissions))
	byID := make(map[string]domain.Submission, len(submissions))
	for _, sub := range submissions {
		byID[sub.ID] = sub
		scored = append(scored, domain.AssembleSubmissionView(sub, nil, votes, viewerID))
	}
	ranked := domain.RankSubmissionsByNetScore(scored)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make([]domain.Submission, len(ranked))
	for i, view := range ranked {
		top[i] = byID[view.ID]
	}
	comments, warnings := s.fetchComments(ctx, submissionIDs(top), warnings)

	views := make([]domain.SubmissionView, len(top))
	for i, sub := range top {
		views[i] = domain.AssembleSubmissionView(sub, comments, votes, viewerID)
	}
	return views, warnings, nil
}

func (s *SubmissionService) assemble(ctx context.Context, submissions []domain.Submission, viewerID string) ([]domain.SubmissionView, []domain.FetchWarning) {
	views := make([]domain.SubmissionView, 0, len(submissions))
	if len(submissions) == 0 {
		return views, nil
	}

	ids := submissionIDs(submissions)
	comments, warnings := s.fetchComments(ctx, ids, nil)
	votes, warnings := s.fetchVotes(ctx, ids, warnings)

	for _, sub := range submissions {
		views = append(views, domain.AssembleSubmissionView(sub, comments, votes, viewerID))
	}
	return views, warnings
}

func (s *SubmissionService) fetchComments(ctx context.Context, ids []string, warnings []domain.FetchWarning) ([]domain.Comment, []domain.FetchWarning) {
	comments, err := s.comments.ListBySubmissionIDs(ctx, ids)
	if err != nil {
		return nil, append(warnings, partialFetch(ctx, domain.FetchPartComments, err))
	}
	return comments, warnings
}

func (s *SubmissionService) fetchVotes(ctx context.Context, ids []string, warnings []domain.FetchWarning) ([]domain.Vote, []domain.FetchWarning) {
	votes, err := s.votes.ListBySubmissionIDs(ctx, ids)
	if err != nil {
		return nil, append(warnings, partialFetch(ctx, domain.FetchPartVotes, err))
	}
	return votes, warnings
}

func submissionIDs(submissions []domain.Submission) []string {
	ids := make([]string, len(submissions))
	for i, sub := range submissions {
		ids[i] = sub.ID
	}
	return ids
}

func partialFetch(ctx context.Context, part domain.FetchPart, err error) domain.FetchWarning {
	metrics.ObservePartialFetch(string(part))
	logger.WarnContext(ctx, "Partial fetch failure",
		slog.String("part", string(part)),
		slog.String("error", err.Error()))

	return domain.FetchWarning{
		Part:    part,
		Message: string(part) + " are temporarily unavailable",
	}
}
