package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"billboard/internal/domain"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		check      func(t *testing.T, resp ErrorResponse)
	}{
		{
			name:       "validation",
			err:        domain.NewValidationError("content", "content_required"),
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, resp ErrorResponse) {
				assert.Equal(t, "content_required", resp.Fields["content"])
			},
		},
		{
			name:       "unauthorized",
			err:        domain.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			check: func(t *testing.T, resp ErrorResponse) {
				assert.Equal(t, LoginPath, resp.Redirect)
			},
		},
		{
			name:       "not found",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage",
			err:        domain.StorageError("list votes", errors.New("timeout")),
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, resp ErrorResponse) {
				assert.True(t, resp.Retryable)
				assert.NotContains(t, resp.Error, "timeout")
			},
		},
		{
			name:       "unknown",
			err:        errors.New("surprise"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", func(c *gin.Context) {
				respondError(c, tt.err)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode[ErrorResponse](t, w)
			assert.NotEmpty(t, resp.Error)
			if tt.check != nil {
				tt.check(t, resp)
			}
		})
	}
}
