package handler

import "billboard/internal/domain"

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submission_id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
}

// SubmissionResponse represents an assembled submission view in API responses.
type SubmissionResponse struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	UserName      string            `json:"user_name"`
	Content       string            `json:"content"`
	ImageURL      *string           `json:"image_url,omitempty"`
	IsPrimeTime   bool              `json:"is_prime_time"`
	IsFlashMoment bool              `json:"is_flash_moment"`
	CreatedAt     string            `json:"created_at"`
	LikeCount     int               `json:"like_count"`
	DislikeCount  int               `json:"dislike_count"`
	NetScore      int               `json:"net_score"`
	ViewerVote    *string           `json:"viewer_vote"`
	Comments      []CommentResponse `json:"comments"`
}

// SubmissionListResponse is the body of feed and leaderboard responses.
type SubmissionListResponse struct {
	Submissions []SubmissionResponse  `json:"submissions"`
	Warnings    []domain.FetchWarning `json:"warnings,omitempty"`
}

// SubmissionDetailResponse is the body of a single submission response.
type SubmissionDetailResponse struct {
	Submission SubmissionResponse    `json:"submission"`
	Warnings   []domain.FetchWarning `json:"warnings,omitempty"`
}

func toCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		ID:           c.ID,
		SubmissionID: c.SubmissionID,
		UserID:       c.UserID,
		UserName:     c.UserName,
		Content:      c.Content,
		CreatedAt:    c.CreatedAt.Format(TimeFormat),
	}
}

func toSubmissionResponse(v domain.SubmissionView) SubmissionResponse {
	response := SubmissionResponse{
		ID:            v.ID,
		UserID:        v.UserID,
		UserName:      v.UserName,
		Content:       v.Content,
		ImageURL:      v.ImageURL,
		IsPrimeTime:   v.IsPrimeTime,
		IsFlashMoment: v.IsFlashMoment,
		CreatedAt:     v.CreatedAt.Format(TimeFormat),
		LikeCount:     v.LikeCount,
		DislikeCount:  v.DislikeCount,
		NetScore:      v.NetScore,
		Comments:      make([]CommentResponse, 0, len(v.Comments)),
	}
	if v.ViewerVote != nil {
		vote := string(*v.ViewerVote)
		response.ViewerVote = &vote
	}
	for _, c := range v.Comments {
		response.Comments = append(response.Comments, toCommentResponse(c))
	}
	return response
}

func toSubmissionList(views []domain.SubmissionView, warnings []domain.FetchWarning) SubmissionListResponse {
	response := SubmissionListResponse{
		Submissions: make([]SubmissionResponse, 0, len(views)),
		Warnings:    warnings,
	}
	for _, v := range views {
		response.Submissions = append(response.Submissions, toSubmissionResponse(v))
	}
	return response
}
