package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/socialsphere/social-api/internal/api/middleware"
	"github.com/socialsphere/social-api/internal/core/domain"
	"github.com/socialsphere/social-api/internal/core/ports"
)

type stubPostService struct {
	createFn func(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error)
	feedFn   func(ctx context.Context) ([]*domain.Post, error)
	userFn   func(ctx context.Context, userID string) ([]*domain.Post, error)
	likeFn   func(ctx context.Context, postID, userID string) (*domain.Post, error)
}

func (s *stubPostService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, in)
}

func (s *stubPostService) Feed(ctx context.Context) ([]*domain.Post, error) {
	return s.feedFn(ctx)
}

func (s *stubPostService) UserPosts(ctx context.Context, userID string) ([]*domain.Post, error) {
	return s.userFn(ctx, userID)
}

func (s *stubPostService) ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	return s.likeFn(ctx, postID, userID)
}

func TestPostHandler_Create_AuthorFromToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
			if in.UserID != "u1" {
				t.Fatalf("author must come from the token, got %q", in.UserID)
			}
			return &domain.Post{ID: "p1", UserID: in.UserID, Description: in.Description, Likes: map[string]bool{}}, nil
		},
	}
	handler := NewPostHandler(stub)

	// The body tries to spoof another author; only description survives.
	body := strings.NewReader(`{"description":"hi","userId":"someone-else"}`)
	req := httptest.NewRequest(http.MethodPost, "/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserIDKey, "u1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var post map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if post["userId"] != "u1" {
		t.Fatalf("expected author u1, got %v", post["userId"])
	}
}

func TestPostHandler_Create_NoIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"description":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestPostHandler_Create_EmptyDescription(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserIDKey, "u1")

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPostHandler_Feed(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		feedFn: func(ctx context.Context) ([]*domain.Post, error) {
			return []*domain.Post{
				{ID: "p2", UserID: "u2", Likes: map[string]bool{}},
				{ID: "p1", UserID: "u1", Likes: map[string]bool{"u2": true}},
			}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserIDKey, "u1")

	if err := handler.Feed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var posts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(posts) != 2 || posts[0]["id"] != "p2" {
		t.Fatalf("unexpected feed: %+v", posts)
	}
}

func TestPostHandler_Like(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		likeFn: func(ctx context.Context, postID, userID string) (*domain.Post, error) {
			if postID != "p1" || userID != "u1" {
				t.Fatalf("unexpected args: %s %s", postID, userID)
			}
			return &domain.Post{ID: postID, Likes: map[string]bool{userID: true}}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/posts/p1/like", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set(middleware.UserIDKey, "u1")

	if err := handler.Like(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
