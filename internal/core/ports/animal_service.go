package ports

import (
	"context"
	"time"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// CreateAnimalInput carries the data needed to register a new animal.
// OwnerID always comes from the authenticated identity, never the payload.
type CreateAnimalInput struct {
	Name        string
	DateOfBirth *time.Time
	OwnerID     string
}

type AnimalService interface {
	Create(ctx context.Context, input CreateAnimalInput) (*domain.Animal, error)
}
