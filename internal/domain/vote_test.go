package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVoteState(t *testing.T) {
	tests := []struct {
		name       string
		current    VoteState
		voteType   VoteType
		wantState  VoteState
		wantAction VoteAction
	}{
		{"no vote then like", VoteStateNone, VoteLike, VoteStateLiked, VoteActionCreated},
		{"no vote then dislike", VoteStateNone, VoteDislike, VoteStateDisliked, VoteActionCreated},
		{"liked then like toggles off", VoteStateLiked, VoteLike, VoteStateNone, VoteActionRemoved},
		{"liked then dislike switches", VoteStateLiked, VoteDislike, VoteStateDisliked, VoteActionUpdated},
		{"disliked then dislike toggles off", VoteStateDisliked, VoteDislike, VoteStateNone, VoteActionRemoved},
		{"disliked then like switches", VoteStateDisliked, VoteLike, VoteStateLiked, VoteActionUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, action, err := NextVoteState(tt.current, tt.voteType)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}

func TestNextVoteState_InvalidVoteType(t *testing.T) {
	state, action, err := NextVoteState(VoteStateLiked, "love")

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, VoteStateLiked, state)
	assert.Empty(t, action)
}

func TestNextVoteState_UnknownState(t *testing.T) {
	_, _, err := NextVoteState("bogus", VoteLike)
	require.Error(t, err)
}

func TestNextVoteState_RevisitableIndefinitely(t *testing.T) {
	state := VoteStateNone
	sequence := []VoteType{VoteLike, VoteLike, VoteDislike, VoteLike, VoteDislike, VoteDislike, VoteLike}
	expected := []VoteState{VoteStateLiked, VoteStateNone, VoteStateDisliked, VoteStateLiked, VoteStateDisliked, VoteStateNone, VoteStateLiked}

	for i, vt := range sequence {
		next, _, err := NextVoteState(state, vt)
		require.NoError(t, err)
		assert.Equal(t, expected[i], next, "step %d", i)
		state = next
	}
}

func TestStateOfAndVoteTypeOf(t *testing.T) {
	like, dislike := VoteLike, VoteDislike

	assert.Equal(t, VoteStateNone, StateOf(nil))
	assert.Equal(t, VoteStateLiked, StateOf(&like))
	assert.Equal(t, VoteStateDisliked, StateOf(&dislike))

	assert.Nil(t, VoteTypeOf(VoteStateNone))
	require.NotNil(t, VoteTypeOf(VoteStateLiked))
	assert.Equal(t, VoteLike, *VoteTypeOf(VoteStateLiked))
	require.NotNil(t, VoteTypeOf(VoteStateDisliked))
	assert.Equal(t, VoteDislike, *VoteTypeOf(VoteStateDisliked))
}
