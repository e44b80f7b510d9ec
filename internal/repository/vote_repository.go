package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"billboard/internal/domain"
	"billboard/internal/logger"
	"billboard/internal/metrics"
)

// PostgreSQL error codes.
const (
	foreignKeyViolation = "23503"
)

// PostgresVoteRepository implements VoteRepository using PostgreSQL.
type PostgresVoteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVoteRepository creates a new PostgresVoteRepository.
func NewPostgresVoteRepository(pool *pgxpool.Pool) *PostgresVoteRepository {
	return &PostgresVoteRepository{pool: pool}
}

// CastVote toggles the caller's vote inside one transaction.
// Concurrent calls for the same (submission, user) pair are serialized by a
// transaction-scoped advisory lock, so the select and the write never race
// even when no vote row exists yet.
func (r *PostgresVoteRepository) CastVote(ctx context.Context, submissionID, userID string, voteType domain.VoteType) (domain.VoteAction, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("postgres", "cast_vote"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", domain.StorageError("begin vote transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`,
		submissionID, userID); err != nil {
		return "", domain.StorageError("lock vote", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM submissions WHERE id = $1)`, submissionID).
		Scan(&exists); err != nil {
		return "", domain.StorageError("check submission", err)
	}
	if !exists {
		return "", domain.ErrNotFound
	}

	var current *domain.VoteType
	var held domain.VoteType
	err = tx.QueryRow(ctx, `
		SELECT vote_type FROM votes
		WHERE submission_id = $1 AND user_id = $2
		FOR UPDATE
	`, submissionID, userID).Scan(&held)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return "", domain.StorageError("select vote", err)
	default:
		current = &held
	}

	next, action, err := domain.NextVoteState(domain.StateOf(current), voteType)
	if err != nil {
		return "", err
	}

	switch action {
	case domain.VoteActionCreated:
		_, err = tx.Exec(ctx, `
			INSERT INTO votes (submission_id, user_id, vote_type)
			VALUES ($1, $2, $3)
		`, submissionID, userID, string(voteType))
	case domain.VoteActionRemoved:
		_, err = tx.Exec(ctx, `DELETE FROM votes WHERE submission_id = $1 AND user_id = $2`,
			submissionID, userID)
	case domain.VoteActionUpdated:
		_, err = tx.Exec(ctx, `
			UPDATE votes SET vote_type = $3, updated_at = NOW()
			WHERE submission_id = $1 AND user_id = $2
		`, submissionID, userID, string(*domain.VoteTypeOf(next)))
	}
	if err != nil {
		return "", domain.StorageError("write vote", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", domain.StorageError("commit vote", err)
	}

	logger.DebugContext(ctx, "Vote cast",
		slog.String("submission_id", submissionID),
		slog.String("action", string(action)))

	return action, nil
}

// ListBySubmissionIDs returns every vote held on the given submissions.
func (r *PostgresVoteRepository) ListBySubmissionIDs(ctx context.Context, submissionIDs []string) ([]domain.Vote, error) {
	votes := make([]domain.Vote, 0)
	if len(submissionIDs) == 0 {
		return votes, nil
	}

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("postgres", "list_votes"))

	rows, err := r.pool.Query(ctx, `
		SELECT id, submission_id, user_id, vote_type, created_at, updated_at
		FROM votes
		WHERE submission_id = ANY($1::text[]::uuid[])
	`, submissionIDs)
	if err != nil {
		return nil, domain.StorageError("list votes", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.Vote
		var voteType string
		if err := rows.Scan(&v.ID, &v.SubmissionID, &v.UserID, &voteType, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, domain.StorageError("scan vote", err)
		}
		v.VoteType = domain.VoteType(voteType)
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("iterate votes", err)
	}

	return votes, nil
}
