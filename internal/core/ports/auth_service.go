package ports

import (
	"context"

	"github.com/socialsphere/social-api/internal/core/domain"
)

// RegisterInput carries the validated registration fields. PicturePath is
// the stored filename produced by the upload middleware, empty when the
// request carried no picture.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PicturePath string
	Location    string
	Occupation  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed session token and the authenticated user.
	// Unknown emails and wrong passwords both map to
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
