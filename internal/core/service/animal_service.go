package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pawtracks/training-system/internal/core/domain"
	"github.com/pawtracks/training-system/internal/core/ports"
)

type AnimalService struct {
	animals ports.AnimalRepository
	logger  zerolog.Logger
}

func NewAnimalService(animals ports.AnimalRepository, logger zerolog.Logger) *AnimalService {
	return &AnimalService{animals: animals, logger: logger}
}

// Create registers a new animal owned by the caller. hoursTrained always
// starts at 0 regardless of the payload.
func (s *AnimalService) Create(ctx context.Context, input ports.CreateAnimalInput) (*domain.Animal, error) {
	animal := &domain.Animal{
		Name:         input.Name,
		HoursTrained: 0,
		Owner:        input.OwnerID,
		DateOfBirth:  input.DateOfBirth,
	}

	id, err := s.animals.Insert(ctx, animal)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create animal")
		return nil, err
	}
	animal.ID = id

	s.logger.Info().Str("animal_id", id).Str("owner", input.OwnerID).Msg("animal created")
	return animal, nil
}
