package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billboard/internal/domain"
	"billboard/internal/repository"
)

func TestPostgresVoteRepository_CastVote(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresVoteRepository(testDB.Pool)
	ctx := context.Background()

	countVotes := func(t *testing.T, submissionID, userID string) int {
		var n int
		require.NoError(t, testDB.Pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM votes WHERE submission_id = $1 AND user_id = $2`,
			submissionID, userID).Scan(&n))
		return n
	}

	t.Run("toggle sequence", func(t *testing.T) {
		testDB.ResetTables(t)
		s := testDB.CreateSubmission(t, "vote on me")

		steps := []struct {
			voteType domain.VoteType
			action   domain.VoteAction
			held     *domain.VoteType
		}{
			{domain.VoteLike, domain.VoteActionCreated, ptr(domain.VoteLike)},
			{domain.VoteLike, domain.VoteActionRemoved, nil},
			{domain.VoteDislike, domain.VoteActionCreated, ptr(domain.VoteDislike)},
			{domain.VoteLike, domain.VoteActionUpdated, ptr(domain.VoteLike)},
			{domain.VoteDislike, domain.VoteActionUpdated, ptr(domain.VoteDislike)},
			{domain.VoteDislike, domain.VoteActionRemoved, nil},
		}

		for i, step := range steps {
			action, err := repo.CastVote(ctx, s.ID, "user_1", step.voteType)
			require.NoError(t, err, "step %d", i)
			assert.Equal(t, step.action, action, "step %d", i)

			votes, err := repo.ListBySubmissionIDs(ctx, []string{s.ID})
			require.NoError(t, err)
			if step.held == nil {
				assert.Empty(t, votes, "step %d", i)
				continue
			}
			require.Len(t, votes, 1, "step %d", i)
			assert.Equal(t, *step.held, votes[0].VoteType, "step %d", i)
		}
	})

	t.Run("votes of different users are independent", func(t *testing.T) {
		testDB.ResetTables(t)
		s := testDB.CreateSubmission(t, "popular")

		_, err := repo.CastVote(ctx, s.ID, "user_1", domain.VoteLike)
		require.NoError(t, err)
		_, err = repo.CastVote(ctx, s.ID, "user_2", domain.VoteDislike)
		require.NoError(t, err)

		votes, err := repo.ListBySubmissionIDs(ctx, []string{s.ID})
		require.NoError(t, err)
		view := domain.AssembleSubmissionView(s, nil, votes, "user_2")
		assert.Equal(t, 1, view.LikeCount)
		assert.Equal(t, 1, view.DislikeCount)
		assert.Equal(t, 0, view.NetScore)
		require.NotNil(t, view.ViewerVote)
		assert.Equal(t, domain.VoteDislike, *view.ViewerVote)
	})

	t.Run("missing submission is not found", func(t *testing.T) {
		testDB.ResetTables(t)

		_, err := repo.CastVote(ctx, uuid.New().String(), "user_1", domain.VoteLike)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid vote type writes nothing", func(t *testing.T) {
		testDB.ResetTables(t)
		s := testDB.CreateSubmission(t, "careful")

		_, err := repo.CastVote(ctx, s.ID, "user_1", domain.VoteType("love"))
		assert.True(t, domain.IsValidationError(err))
		assert.Equal(t, 0, countVotes(t, s.ID, "user_1"))
	})

	t.Run("concurrent toggles keep at most one vote", func(t *testing.T) {
		testDB.ResetTables(t)
		s := testDB.CreateSubmission(t, "contested")

		const workers = 9
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.CastVote(ctx, s.ID, "user_1", domain.VoteLike)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		// An odd number of serialized toggles leaves the like in place.
		assert.Equal(t, 1, countVotes(t, s.ID, "user_1"))
	})

	t.Run("votes cascade with submission", func(t *testing.T) {
		testDB.ResetTables(t)
		s := testDB.CreateSubmission(t, "short lived")
		_, err := repo.CastVote(ctx, s.ID, "user_1", domain.VoteLike)
		require.NoError(t, err)

		_, err = testDB.Pool.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, countVotes(t, s.ID, "user_1"))
	})
}

func ptr[T any](v T) *T {
	return &v
}
