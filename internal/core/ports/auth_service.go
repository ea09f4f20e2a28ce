package ports

import (
	"context"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a new user account.
// Password is plaintext here; the service hashes it before storage.
type RegisterInput struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	ProfilePicture string
}

// AuthService implements registration and the credential path.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login checks credentials without issuing a token.
	Login(ctx context.Context, email, password string) error
	// Verify checks credentials and returns a signed bearer token carrying the
	// full user record.
	Verify(ctx context.Context, email, password string) (string, error)
}
