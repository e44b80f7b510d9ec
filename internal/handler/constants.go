package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

const (
	// LoginPath is where clients send callers that must sign in.
	LoginPath = "/login"

	// MaxLeaderboardLimit caps the limit query parameter of the leaderboard.
	MaxLeaderboardLimit = 100

	// multipartOverhead is the request body allowance on top of the image size limit.
	multipartOverhead = 1 << 20
)
