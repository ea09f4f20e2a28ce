package ports

import (
	"context"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// TrainingLogRepository defines persistence operations for training logs.
type TrainingLogRepository interface {
	Insert(ctx context.Context, log *domain.TrainingLog) (string, error)
	FindByID(ctx context.Context, id string) (*domain.TrainingLog, error)
	List(ctx context.Context, limit int64, afterID string) ([]*domain.TrainingLog, error)
	SetVideo(ctx context.Context, id, url string) error
}
