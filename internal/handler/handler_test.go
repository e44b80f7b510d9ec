package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"billboard/internal/domain"
	"billboard/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var signedIn = domain.Identity{UserID: "user_1", DisplayName: "neo"}

// withIdentity stands in for middleware.Auth in handler tests.
func withIdentity(identity domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identity.IsAnonymous() {
			c.Set(middleware.IdentityKey, identity)
		}
		c.Next()
	}
}

func newRouter(identity domain.Identity) *gin.Engine {
	router := gin.New()
	router.Use(withIdentity(identity))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func sampleView() *domain.SubmissionView {
	liked := domain.VoteLike
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.SubmissionView{
		ID:           uuid.New().String(),
		UserID:       "user_author",
		UserName:     "author",
		Content:      "hello",
		CreatedAt:    created,
		LikeCount:    2,
		DislikeCount: 1,
		NetScore:     1,
		ViewerVote:   &liked,
		Comments: []domain.Comment{
			{ID: "c1", Content: "first", CreatedAt: created.Add(time.Minute)},
		},
	}
}
