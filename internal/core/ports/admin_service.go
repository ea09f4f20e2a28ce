package ports

import (
	"context"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// PageInput carries cursor-pagination parameters. LastID is the identifier of
// the last record of the previous page; empty means start from the beginning.
type PageInput struct {
	Size   int64
	LastID string
}

// UserPage is one page of users plus the cursor for the next page.
type UserPage struct {
	Items  []*domain.User
	LastID string
}

type AnimalPage struct {
	Items  []*domain.Animal
	LastID string
}

type TrainingLogPage struct {
	Items  []*domain.TrainingLog
	LastID string
}

// AdminService lists each collection in identifier order. Pages are not
// isolated from concurrent inserts; the cursor only guarantees strictly-after
// semantics.
type AdminService interface {
	ListUsers(ctx context.Context, input PageInput) (*UserPage, error)
	ListAnimals(ctx context.Context, input PageInput) (*AnimalPage, error)
	ListTrainingLogs(ctx context.Context, input PageInput) (*TrainingLogPage, error)
}
