package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"billboard/internal/domain"
	"billboard/internal/metrics"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts a comment. A missing submission yields domain.ErrNotFound.
func (r *PostgresCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("postgres", "create_comment"))

	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (id, submission_id, user_id, user_name, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, c.ID, c.SubmissionID, c.UserID, c.UserName, c.Content).Scan(&c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domain.ErrNotFound
		}
		return domain.StorageError("insert comment", err)
	}

	return nil
}

// ListBySubmissionIDs returns the comments of the given submissions, oldest first.
func (r *PostgresCommentRepository) ListBySubmissionIDs(ctx context.Context, submissionIDs []string) ([]domain.Comment, error) {
	comments := make([]domain.Comment, 0)
	if len(submissionIDs) == 0 {
		return comments, nil
	}

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("postgres", "list_comments"))

	rows, err := r.pool.Query(ctx, `
		SELECT id, submission_id, user_id, user_name, content, created_at
		FROM comments
		WHERE submission_id = ANY($1::text[]::uuid[])
		ORDER BY created_at, id
	`, submissionIDs)
	if err != nil {
		return nil, domain.StorageError("list comments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.SubmissionID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt); err != nil {
			return nil, domain.StorageError("scan comment", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("iterate comments", err)
	}

	return comments, nil
}
