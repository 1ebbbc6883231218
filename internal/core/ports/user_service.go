package ports

import (
	"context"

	"github.com/socialsphere/social-api/internal/core/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// GetFriends expands the user's friend id list into full projections.
	GetFriends(ctx context.Context, id string) ([]*domain.User, error)
	// ToggleFriend adds friendID to the user's friend list (and vice
	// versa) when absent, removes it from both when present, and returns
	// the user's updated friend projections.
	ToggleFriend(ctx context.Context, id, friendID string) ([]*domain.User, error)
}
