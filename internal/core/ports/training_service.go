package ports

import (
	"context"
	"time"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// CreateTrainingLogInput carries the data needed to record a training session.
// UserID always comes from the authenticated identity.
type CreateTrainingLogInput struct {
	Date        time.Time
	Description string
	Hours       float64
	AnimalID    string
	UserID      string
}

// TrainingService records training sessions, enforcing that the referenced
// animal exists and is owned by the referenced user before any write.
type TrainingService interface {
	Create(ctx context.Context, input CreateTrainingLogInput) (*domain.TrainingLog, error)
}
