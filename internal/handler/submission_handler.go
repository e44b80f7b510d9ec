package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billboard/internal/middleware"
	"billboard/internal/service"
)

// SubmissionHandler handles submission feed, detail, and posting requests.
type SubmissionHandler struct {
	submissionService service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// CreateSubmissionRequest is the body of POST /api/v1/submissions.
type CreateSubmissionRequest struct {
	UserName string  `json:"user_name"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
}

// List handles GET /api/v1/submissions
func (h *SubmissionHandler) List(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	views, warnings, err := h.submissionService.List(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSubmissionList(views, warnings))
}

// Create handles POST /api/v1/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid_json")
		return
	}

	view, err := h.submissionService.Create(c.Request.Context(), middleware.GetIdentity(c), service.CreateSubmissionInput{
		UserName: req.UserName,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SubmissionDetailResponse{Submission: toSubmissionResponse(*view)})
}

// Get handles GET /api/v1/submissions/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "id", "id must be a valid UUID")
		return
	}

	view, warnings, err := h.submissionService.Get(c.Request.Context(), id, middleware.GetIdentity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmissionDetailResponse{
		Submission: toSubmissionResponse(*view),
		Warnings:   warnings,
	})
}

// Leaderboard handles GET /api/v1/leaderboard?limit=N
func (h *SubmissionHandler) Leaderboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxLeaderboardLimit {
			badRequest(c, "limit", "limit must be between 1 and "+strconv.Itoa(MaxLeaderboardLimit))
			return
		}
		limit = n
	}

	views, warnings, err := h.submissionService.Leaderboard(c.Request.Context(), middleware.GetIdentity(c).UserID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSubmissionList(views, warnings))
}
