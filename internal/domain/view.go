package domain

import (
	"sort"
	"time"
)

// SubmissionView is the read model of a submission: derived vote counts, the viewer's own
// vote, and its comments oldest first. It is rebuilt on every fetch and never persisted.
type SubmissionView struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Content       string    `json:"content"`
	ImageURL      *string   `json:"image_url,omitempty"`
	IsPrimeTime   bool      `json:"is_prime_time"`
	IsFlashMoment bool      `json:"is_flash_moment"`
	CreatedAt     time.Time `json:"created_at"`
	LikeCount     int       `json:"like_count"`
	DislikeCount  int       `json:"dislike_count"`
	NetScore      int       `json:"net_score"`
	ViewerVote    *VoteType `json:"viewer_vote"`
	Comments      []Comment `json:"comments"`
}

// FetchPart names secondary data that may fail to load without failing the view.
type FetchPart string

const (
	FetchPartComments FetchPart = "comments"
	FetchPartVotes    FetchPart = "votes"
)

// FetchWarning reports a non-fatal partial fetch failure.
type FetchWarning struct {
	Part    FetchPart `json:"part"`
	Message string    `json:"message"`
}

// AssembleSubmissionView folds comments and votes into a view of submission.
// Rows belonging to other submissions are ignored, so callers may pass batch results.
// An empty viewerID never matches a vote.
func AssembleSubmissionView(submission Submission, comments []Comment, votes []Vote, viewerID string) SubmissionView {
	view := SubmissionView{
		ID:            submission.ID,
		UserID:        submission.UserID,
		UserName:      submission.UserName,
		Content:       submission.Content,
		IsPrimeTime:   submission.IsPrimeTime,
		IsFlashMoment: submission.IsFlashMoment,
		CreatedAt:     submission.CreatedAt,
		Comments:      make([]Comment, 0),
	}
	if submission.ImageURL != nil {
		url := *submission.ImageURL
		view.ImageURL = &url
	}

	for _, v := range votes {
		if v.SubmissionID != submission.ID {
			continue
		}
		switch v.VoteType {
		case VoteLike:
			view.LikeCount++
		case VoteDislike:
			view.DislikeCount++
		}
		if viewerID != "" && v.UserID == viewerID {
			vt := v.VoteType
			view.ViewerVote = &vt
		}
	}
	view.NetScore = view.LikeCount - view.DislikeCount

	for _, c := range comments {
		if c.SubmissionID == submission.ID {
			view.Comments = append(view.Comments, c)
		}
	}
	sort.SliceStable(view.Comments, func(i, j int) bool {
		a, b := view.Comments[i], view.Comments[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return view
}

// RankSubmissionsByNetScore returns a new slice ordered by net score, highest first.
// Equal scores put the most recent submission first, then order by id.
func RankSubmissionsByNetScore(views []SubmissionView) []SubmissionView {
	ranked := make([]SubmissionView, len(views))
	copy(ranked, views)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.NetScore != b.NetScore {
			return a.NetScore > b.NetScore
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return ranked
}
