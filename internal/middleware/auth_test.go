package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billboard/internal/auth"
	"billboard/internal/domain"
	"billboard/internal/middleware"
)

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := auth.NewVerifier("middleware-secret", "")

	validToken, err := verifier.Issue(domain.Identity{UserID: "user_1", DisplayName: "neo"}, time.Minute)
	require.NoError(t, err)
	expiredToken, err := verifier.Issue(domain.Identity{UserID: "user_1"}, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantUserID string
	}{
		{name: "no header is anonymous"},
		{name: "valid bearer token", header: "Bearer " + validToken, wantUserID: "user_1"},
		{name: "scheme is case insensitive", header: "bearer " + validToken, wantUserID: "user_1"},
		{name: "expired token is anonymous", header: "Bearer " + expiredToken},
		{name: "wrong scheme is anonymous", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token is anonymous", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.Auth(verifier))

			var identity domain.Identity
			router.GET("/test", func(c *gin.Context) {
				identity = middleware.GetIdentity(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantUserID, identity.UserID)
			assert.Equal(t, tt.wantUserID == "", identity.IsAnonymous())
		})
	}
}

func TestGetIdentity_WrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(middleware.IdentityKey, "user_1")

	assert.True(t, middleware.GetIdentity(c).IsAnonymous())
}
