package domain

import "time"

// Comment represents a comment left on a submission. Comments are insert-only.
type Comment struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}
