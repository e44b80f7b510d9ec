package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/looplab/fsm"
)

// VoteType is the kind of vote a user casts on a submission.
type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
)

// ValidVoteTypes contains all valid vote types.
var ValidVoteTypes = []VoteType{VoteLike, VoteDislike}

// IsValidVoteType checks if a vote type is valid.
func IsValidVoteType(voteType VoteType) bool {
	for _, vt := range ValidVoteTypes {
		if vt == voteType {
			return true
		}
	}
	return false
}

// VoteState is the per (submission, user) position in the vote state machine.
type VoteState string

const (
	VoteStateNone     VoteState = "none"
	VoteStateLiked    VoteState = "liked"
	VoteStateDisliked VoteState = "disliked"
)

// VoteAction describes which transition a cast vote caused.
type VoteAction string

const (
	VoteActionCreated VoteAction = "created"
	VoteActionRemoved VoteAction = "removed"
	VoteActionUpdated VoteAction = "updated"
)

// Vote represents one row of the vote ledger. At most one exists per (SubmissionID, UserID).
type Vote struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	UserID       string    `json:"user_id"`
	VoteType     VoteType  `json:"vote_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repeating the vote already held toggles it off; the other type switches it.
var voteEvents = fsm.Events{
	{Name: string(VoteLike), Src: []string{string(VoteStateNone), string(VoteStateDisliked)}, Dst: string(VoteStateLiked)},
	{Name: string(VoteLike), Src: []string{string(VoteStateLiked)}, Dst: string(VoteStateNone)},
	{Name: string(VoteDislike), Src: []string{string(VoteStateNone), string(VoteStateLiked)}, Dst: string(VoteStateDisliked)},
	{Name: string(VoteDislike), Src: []string{string(VoteStateDisliked)}, Dst: string(VoteStateNone)},
}

// StateOf returns the state represented by an existing vote row, or VoteStateNone for nil.
func StateOf(existing *VoteType) VoteState {
	if existing == nil {
		return VoteStateNone
	}
	switch *existing {
	case VoteLike:
		return VoteStateLiked
	case VoteDislike:
		return VoteStateDisliked
	}
	return VoteStateNone
}

// VoteTypeOf returns the vote type stored for state, or nil for VoteStateNone.
func VoteTypeOf(state VoteState) *VoteType {
	var vt VoteType
	switch state {
	case VoteStateLiked:
		vt = VoteLike
	case VoteStateDisliked:
		vt = VoteDislike
	default:
		return nil
	}
	return &vt
}

// NextVoteState applies voteType to current and reports the resulting state and the
// ledger mutation it requires. It has no side effects.
func NextVoteState(current VoteState, voteType VoteType) (VoteState, VoteAction, error) {
	if !IsValidVoteType(voteType) {
		return current, "", NewValidationError("vote_type", "must be one of: like, dislike")
	}

	machine := fsm.NewFSM(string(current), voteEvents, fsm.Callbacks{})
	if err := machine.Event(context.Background(), string(voteType)); err != nil {
		return current, "", fmt.Errorf("vote transition from %q on %q: %w", current, voteType, err)
	}

	next := VoteState(machine.Current())
	switch {
	case current == VoteStateNone:
		return next, VoteActionCreated, nil
	case next == VoteStateNone:
		return next, VoteActionRemoved, nil
	default:
		return next, VoteActionUpdated, nil
	}
}
