package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	commentsvc "inkwell-backend/internal/domains/comment/service"
	followsvc "inkwell-backend/internal/domains/follow/service"
	"inkwell-backend/internal/domains/post"
	"inkwell-backend/internal/domains/post/service"
	"inkwell-backend/internal/shared/middleware"
	"inkwell-backend/pkg/jwt"
)

// fakePostService embeds the interface and overrides only what each test
// exercises; untouched methods panic loudly.
type fakePostService struct {
	service.PostService
	editPost func(ctx context.Context, postID int64, actorID uuid.UUID, form post.PostForm, image *post.ImageUpload) (*post.Post, error)
	getPost  func(ctx context.Context, id int64) (*post.Post, error)
}

func (f *fakePostService) EditPost(ctx context.Context, postID int64, actorID uuid.UUID, form post.PostForm, image *post.ImageUpload) (*post.Post, error) {
	return f.editPost(ctx, postID, actorID, form, image)
}

func (f *fakePostService) GetPost(ctx context.Context, id int64) (*post.Post, error) {
	return f.getPost(ctx, id)
}

type fakeCommentService struct {
	commentsvc.CommentService
}

type fakeFollowService struct {
	followsvc.FollowService
}

func newEditRouter(t *testing.T, svc service.PostService) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", time.Hour)
	h := NewPostHandler(svc, &fakeCommentService{}, &fakeFollowService{})

	router := gin.New()
	router.Use(middleware.Identify(manager))

	protected := router.Group("/")
	protected.Use(middleware.RequireUser())
	protected.GET("/posts/:id/edit/", h.EditForm)
	protected.POST("/posts/:id/edit/", h.Edit)

	return router, manager
}

func authedForm(t *testing.T, manager *jwt.Manager, userID uuid.UUID, target string, form url.Values) *http.Request {
	t.Helper()

	token, err := manager.Generate(userID.String(), "someone")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestEditRedirectsNonOwner(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	existing := &post.Post{ID: 7, Text: "original", Author: post.Author{ID: owner, Username: "owner"}}

	svc := &fakePostService{
		getPost: func(_ context.Context, id int64) (*post.Post, error) {
			require.Equal(t, int64(7), id)
			return existing, nil
		},
		editPost: func(_ context.Context, _ int64, actorID uuid.UUID, _ post.PostForm, _ *post.ImageUpload) (*post.Post, error) {
			if actorID != owner {
				return nil, post.ErrNotOwner
			}
			return existing, nil
		},
	}

	router, manager := newEditRouter(t, svc)

	t.Run("anonymous edit is sent to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/posts/7/edit/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Contains(t, rec.Header().Get("Location"), middleware.LoginPath)
	})

	t.Run("stranger is sent back to the post", func(t *testing.T) {
		req := authedForm(t, manager, stranger, "/posts/7/edit/", url.Values{"text": {"hijack"}})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/posts/7/", rec.Header().Get("Location"))
	})

	t.Run("stranger edit form is sent back to the post", func(t *testing.T) {
		token, err := manager.Generate(stranger.String(), "stranger")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/posts/7/edit/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/posts/7/", rec.Header().Get("Location"))
	})

	t.Run("owner edit succeeds", func(t *testing.T) {
		req := authedForm(t, manager, owner, "/posts/7/edit/", url.Values{"text": {"updated"}})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric id is not found", func(t *testing.T) {
		req := authedForm(t, manager, owner, "/posts/abc/edit/", url.Values{"text": {"x"}})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
