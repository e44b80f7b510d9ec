package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billboard/internal/domain"
	"billboard/internal/mocks"
	"billboard/internal/service"
)

func TestSubmissionHandler_List(t *testing.T) {
	t.Run("returns views and warnings", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)
		view := sampleView()

		mockService.EXPECT().
			List(mock.Anything, "user_1").
			Return([]domain.SubmissionView{*view}, []domain.FetchWarning{{Part: domain.FetchPartComments, Message: "comments are temporarily unavailable"}}, nil)

		router := newRouter(signedIn)
		router.GET("/api/v1/submissions", h.List)
		w := doJSON(t, router, "GET", "/api/v1/submissions", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[SubmissionListResponse](t, w)
		require.Len(t, resp.Submissions, 1)
		got := resp.Submissions[0]
		assert.Equal(t, view.ID, got.ID)
		assert.Equal(t, 2, got.LikeCount)
		assert.Equal(t, 1, got.NetScore)
		require.NotNil(t, got.ViewerVote)
		assert.Equal(t, "like", *got.ViewerVote)
		assert.Equal(t, "2024-05-01T12:00:00Z", got.CreatedAt)
		require.Len(t, got.Comments, 1)
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, domain.FetchPartComments, resp.Warnings[0].Part)
	})

	t.Run("anonymous viewer passes empty viewer id", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)

		mockService.EXPECT().List(mock.Anything, "").Return([]domain.SubmissionView{}, nil, nil)

		router := newRouter(domain.Identity{})
		router.GET("/api/v1/submissions", h.List)
		w := doJSON(t, router, "GET", "/api/v1/submissions", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"submissions":[]}`, w.Body.String())
	})

	t.Run("storage failure is 503", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)

		mockService.EXPECT().List(mock.Anything, mock.Anything).
			Return(nil, nil, domain.StorageError("list submissions", errors.New("down")))

		router := newRouter(domain.Identity{})
		router.GET("/api/v1/submissions", h.List)
		w := doJSON(t, router, "GET", "/api/v1/submissions", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestSubmissionHandler_Create(t *testing.T) {
	t.Run("creates anonymous submission", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)
		view := sampleView()

		mockService.EXPECT().
			Create(mock.Anything, domain.Identity{}, service.CreateSubmissionInput{UserName: "guest", Content: "hello"}).
			Return(view, nil)

		router := newRouter(domain.Identity{})
		router.POST("/api/v1/submissions", h.Create)
		w := doJSON(t, router, "POST", "/api/v1/submissions", CreateSubmissionRequest{UserName: "guest", Content: "hello"})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[SubmissionDetailResponse](t, w)
		assert.Equal(t, view.ID, resp.Submission.ID)
	})

	t.Run("invalid json is 400", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)

		router := newRouter(domain.Identity{})
		router.POST("/api/v1/submissions", h.Create)
		w := doJSON(t, router, "POST", "/api/v1/submissions", "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &domain.ValidationError{Fields: map[string]string{"content": "content_too_long"}})

		router := newRouter(domain.Identity{})
		router.POST("/api/v1/submissions", h.Create)
		w := doJSON(t, router, "POST", "/api/v1/submissions", CreateSubmissionRequest{UserName: "guest", Content: "long"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, "content_too_long", resp.Fields["content"])
	})
}

func TestSubmissionHandler_Get(t *testing.T) {
	t.Run("returns submission", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)
		view := sampleView()

		mockService.EXPECT().Get(mock.Anything, view.ID, "user_1").Return(view, nil, nil)

		router := newRouter(signedIn)
		router.GET("/api/v1/submissions/:id", h.Get)
		w := doJSON(t, router, "GET", "/api/v1/submissions/"+view.ID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[SubmissionDetailResponse](t, w)
		assert.Equal(t, view.ID, resp.Submission.ID)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)

		router := newRouter(signedIn)
		router.GET("/api/v1/submissions/:id", h.Get)
		w := doJSON(t, router, "GET", "/api/v1/submissions/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing submission is 404", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)
		id := uuid.New().String()

		mockService.EXPECT().Get(mock.Anything, id, "").Return(nil, nil, domain.ErrNotFound)

		router := newRouter(domain.Identity{})
		router.GET("/api/v1/submissions/:id", h.Get)
		w := doJSON(t, router, "GET", "/api/v1/submissions/"+id, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSubmissionHandler_Leaderboard(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)

		mockService.EXPECT().Leaderboard(mock.Anything, "", 0).Return([]domain.SubmissionView{*sampleView()}, nil, nil)

		router := newRouter(domain.Identity{})
		router.GET("/api/v1/leaderboard", h.Leaderboard)
		w := doJSON(t, router, "GET", "/api/v1/leaderboard", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[SubmissionListResponse](t, w).Submissions, 1)
	})

	t.Run("explicit limit", func(t *testing.T) {
		mockService := mocks.NewMockSubmissionServiceInterface(t)
		h := NewSubmissionHandler(mockService)

		mockService.EXPECT().Leaderboard(mock.Anything, "user_1", 5).Return([]domain.SubmissionView{}, nil, nil)

		router := newRouter(signedIn)
		router.GET("/api/v1/leaderboard", h.Leaderboard)
		w := doJSON(t, router, "GET", "/api/v1/leaderboard?limit=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	for _, raw := range []string{"0", "-3", "abc", "101"} {
		t.Run("rejects limit "+raw, func(t *testing.T) {
			mockService := mocks.NewMockSubmissionServiceInterface(t)
			h := NewSubmissionHandler(mockService)

			router := newRouter(domain.Identity{})
			router.GET("/api/v1/leaderboard", h.Leaderboard)
			w := doJSON(t, router, "GET", "/api/v1/leaderboard?limit="+raw, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
