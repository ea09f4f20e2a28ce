package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pawtracks/training-system/internal/core/domain"
	"github.com/pawtracks/training-system/internal/core/ports"
)

type TrainingService struct {
	users   ports.UserRepository
	animals ports.AnimalRepository
	logs    ports.TrainingLogRepository
	logger  zerolog.Logger
}

func NewTrainingService(
	users ports.UserRepository,
	animals ports.AnimalRepository,
	logs ports.TrainingLogRepository,
	logger zerolog.Logger,
) *TrainingService {
	return &TrainingService{users: users, animals: animals, logs: logs, logger: logger}
}

// Create records a training session. The referenced user and animal must both
// exist, and the animal must be owned by the user, before anything is written.
// The hoursTrained update and the log insert are two independent writes with
// no compensating transaction; if the insert fails the increment persists.
func (s *TrainingService) Create(ctx context.Context, input ports.CreateTrainingLogInput) (*domain.TrainingLog, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrBrokenReference
		}
		return nil, err
	}

	animal, err := s.animals.FindByID(ctx, input.AnimalID)
	if err != nil {
		if errors.Is(err, domain.ErrAnimalNotFound) {
			return nil, domain.ErrBrokenReference
		}
		return nil, err
	}

	if animal.Owner != user.ID {
		return nil, domain.ErrOwnershipMismatch
	}

	if err := s.animals.SetHoursTrained(ctx, animal.ID, animal.HoursTrained+input.Hours); err != nil {
		return nil, fmt.Errorf("update hours trained: %w", err)
	}

	log := &domain.TrainingLog{
		Date:        input.Date,
		Description: input.Description,
		Hours:       input.Hours,
		Animal:      input.AnimalID,
		User:        input.UserID,
	}

	id, err := s.logs.Insert(ctx, log)
	if err != nil {
		s.logger.Error().Err(err).Str("animal", input.AnimalID).Msg("failed to insert training log")
		return nil, err
	}
	log.ID = id

	s.logger.Info().
		Str("log_id", id).
		Str("animal", input.AnimalID).
		Float64("hours", input.Hours).
		Msg("training log created")

	return log, nil
}
