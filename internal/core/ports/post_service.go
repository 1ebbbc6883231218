package ports

import (
	"context"

	"github.com/socialsphere/social-api/internal/core/domain"
)

// CreatePostInput carries the data needed to create a post. UserID comes
// from the authenticated identity, never from the request body.
type CreatePostInput struct {
	UserID      string
	Description string
	PicturePath string
}

type PostService interface {
	CreatePost(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	// Feed returns every post, newest first.
	Feed(ctx context.Context) ([]*domain.Post, error)
	UserPosts(ctx context.Context, userID string) ([]*domain.Post, error)
	// ToggleLike adds userID to the post's like set when absent and
	// removes it when present, returning the updated post.
	ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error)
}
