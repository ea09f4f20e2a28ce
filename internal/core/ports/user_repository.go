package ports

import (
	"context"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Insert stores a new user and returns the generated identifier.
	Insert(ctx context.Context, user *domain.User) (string, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail is used by the credential path. Emails are not unique in the
	// collection; the first match wins.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns up to limit users ordered by identifier ascending, strictly
	// after afterID when it is non-empty.
	List(ctx context.Context, limit int64, afterID string) ([]*domain.User, error)
	SetProfilePicture(ctx context.Context, id, url string) error
}
