package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"billboard/internal/domain"
	"billboard/internal/logger"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	Redirect  string            `json:"redirect,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

// respondError maps the error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: ve.Fields})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "sign in required", Redirect: LoginPath})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "submission not found"})
	case errors.Is(err, domain.ErrStorage):
		logger.ErrorContext(c.Request.Context(), "Storage failure",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage temporarily unavailable", Retryable: true})
	default:
		logger.ErrorContext(c.Request.Context(), "Unhandled error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func badRequest(c *gin.Context, field, message string) {
	respondError(c, domain.NewValidationError(field, message))
}
