package ports

import (
	"context"

	"github.com/socialsphere/social-api/internal/core/domain"
)

// UserRepository defines the persistence interface for users.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs resolves a list of user ids; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	UpdateFriends(ctx context.Context, id string, friends []string) error
}
