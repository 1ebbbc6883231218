package ports

import (
	"context"

	"github.com/socialsphere/social-api/internal/core/domain"
)

// PostRepository defines the persistence interface for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]*domain.Post, error)
	// FindByUser returns all posts authored by the given user, newest first.
	FindByUser(ctx context.Context, userID string) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// UpdateLikes replaces the like set of a post and returns the updated
	// document. Returns domain.ErrPostNotFound for an unknown id.
	UpdateLikes(ctx context.Context, id string, likes map[string]bool) (*domain.Post, error)
}
