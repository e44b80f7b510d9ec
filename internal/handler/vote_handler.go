package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billboard/internal/domain"
	"billboard/internal/logger"
	"billboard/internal/middleware"
	"billboard/internal/service"
)

// VoteHandler handles vote toggle requests.
type VoteHandler struct {
	voteService       service.VoteServiceInterface
	submissionService service.SubmissionServiceInterface
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(voteService service.VoteServiceInterface, submissionService service.SubmissionServiceInterface) *VoteHandler {
	return &VoteHandler{voteService: voteService, submissionService: submissionService}
}

// CastVoteRequest is the body of POST /api/v1/submissions/:id/votes.
type CastVoteRequest struct {
	VoteType string `json:"vote_type"`
}

// CastVoteResponse reports the transition taken and the refreshed submission.
// Submission is omitted when the refetch fails; the vote itself was committed.
type CastVoteResponse struct {
	Action     string                `json:"action"`
	Submission *SubmissionResponse   `json:"submission,omitempty"`
	Warnings   []domain.FetchWarning `json:"warnings,omitempty"`
}

// CastVote handles POST /api/v1/submissions/:id/votes
func (h *VoteHandler) CastVote(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "id", "id must be a valid UUID")
		return
	}

	identity := middleware.GetIdentity(c)
	if identity.IsAnonymous() {
		respondError(c, domain.ErrUnauthorized)
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid_json")
		return
	}

	ctx := c.Request.Context()
	action, err := h.voteService.CastVote(ctx, id, identity, domain.VoteType(req.VoteType))
	if err != nil {
		respondError(c, err)
		return
	}

	response := CastVoteResponse{Action: string(action)}

	view, warnings, err := h.submissionService.Get(ctx, id, identity.UserID)
	if err != nil {
		logger.WarnContext(ctx, "Refetch after vote failed",
			slog.String("submission_id", id),
			slog.String("error", err.Error()))
	} else {
		submission := toSubmissionResponse(*view)
		response.Submission = &submission
		response.Warnings = warnings
	}

	c.JSON(http.StatusOK, response)
}
