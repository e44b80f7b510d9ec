package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"billboard/internal/domain"
	"billboard/internal/metrics"
)

const submissionColumns = `id, user_id, user_name, content, image_url, is_prime_time, is_flash_moment, created_at, updated_at`

// PostgresSubmissionRepository implements SubmissionRepository using PostgreSQL.
type PostgresSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubmissionRepository creates a new PostgresSubmissionRepository.
func NewPostgresSubmissionRepository(pool *pgxpool.Pool) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{pool: pool}
}

// Create inserts a submission and fills in its server-assigned timestamps.
func (r *PostgresSubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("postgres", "create_submission"))

	err := r.pool.QueryRow(ctx, `
		INSERT INTO submissions (id, user_id, user_name, content, image_url, is_prime_time, is_flash_moment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, s.ID, s.UserID, s.UserName, s.Content, s.ImageURL, s.IsPrimeTime, s.IsFlashMoment).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.StorageError("insert submission", err)
	}

	return nil
}

// GetByID retrieves a submission by ID. It returns nil, nil when no row exists.
func (r *PostgresSubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("postgres", "get_submission"))

	row := r.pool.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id)

	s, err := scanSubmission(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageError("get submission", err)
	}

	return s, nil
}

// List returns submissions ordered by created_at descending.
func (r *PostgresSubmissionRepository) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues("postgres", "list_submissions"))

	query := `SELECT ` + submissionColumns + ` FROM submissions ORDER BY created_at DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError("list submissions", err)
	}
	defer rows.Close()

	submissions := make([]domain.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, domain.StorageError("scan submission", err)
		}
		submissions = append(submissions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("iterate submissions", err)
	}

	return submissions, nil
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var s domain.Submission
	if err := row.Scan(&s.ID, &s.UserID, &s.UserName, &s.Content, &s.ImageURL,
		&s.IsPrimeTime, &s.IsFlashMoment, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
