package ports

import (
	"context"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// AnimalRepository defines persistence operations for animals.
type AnimalRepository interface {
	Insert(ctx context.Context, animal *domain.Animal) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Animal, error)
	List(ctx context.Context, limit int64, afterID string) ([]*domain.Animal, error)
	// SetHoursTrained overwrites the running total with a precomputed sum.
	SetHoursTrained(ctx context.Context, id string, hours float64) error
	SetProfilePicture(ctx context.Context, id, url string) error
}
