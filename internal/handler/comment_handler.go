package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billboard/internal/domain"
	"billboard/internal/middleware"
	"billboard/internal/service"
)

// CommentHandler handles comment requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddCommentRequest is the body of POST /api/v1/submissions/:id/comments.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// Add handles POST /api/v1/submissions/:id/comments
func (h *CommentHandler) Add(c *gin.Context) {
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

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid_json")
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), identity, id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(*comment))
}
