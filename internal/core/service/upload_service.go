package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pawtracks/training-system/internal/core/domain"
	"github.com/pawtracks/training-system/internal/core/ports"
)

// UploadService ownership-checks an upload target, relays the file to the
// storage worker, and persists the resulting public URL on the owning record.
type UploadService struct {
	users   ports.UserRepository
	animals ports.AnimalRepository
	logs    ports.TrainingLogRepository
	store   ports.FileStore
	logger  zerolog.Logger
}

func NewUploadService(
	users ports.UserRepository,
	animals ports.AnimalRepository,
	logs ports.TrainingLogRepository,
	store ports.FileStore,
	logger zerolog.Logger,
) *UploadService {
	return &UploadService{users: users, animals: animals, logs: logs, store: store, logger: logger}
}

// Upload runs the full relay: ownership check, worker POST, URL persist.
// The database is only touched after the worker confirms the upload, so a
// worker failure leaves no partial state.
func (s *UploadService) Upload(ctx context.Context, input ports.UploadInput) error {
	if err := s.checkOwnership(ctx, input); err != nil {
		return err
	}

	key, err := s.store.Put(ctx, string(input.Kind), input.TargetID, input.File)
	if err != nil {
		s.logger.Error().Err(err).
			Str("kind", string(input.Kind)).
			Str("target", input.TargetID).
			Msg("storage worker upload failed")
		return err
	}

	url := s.store.PublicURL(key)
	if err := s.persistURL(ctx, input, url); err != nil {
		return fmt.Errorf("persist upload url: %w", err)
	}

	s.logger.Info().
		Str("kind", string(input.Kind)).
		Str("target", input.TargetID).
		Str("url", url).
		Msg("file uploaded")
	return nil
}

// checkOwnership enforces the per-kind rules: animals must be owned by the
// caller, training logs must belong to the caller, and user uploads are
// already pinned to the caller's own id by the transport layer.
func (s *UploadService) checkOwnership(ctx context.Context, input ports.UploadInput) error {
	switch input.Kind {
	case ports.UploadKindUser:
		return nil
	case ports.UploadKindAnimal:
		animal, err := s.animals.FindByID(ctx, input.TargetID)
		if err != nil || animal.Owner != input.CallerID {
			return domain.ErrOwnershipMismatch
		}
		return nil
	case ports.UploadKindTraining:
		log, err := s.logs.FindByID(ctx, input.TargetID)
		if err != nil || log.User != input.CallerID {
			return domain.ErrOwnershipMismatch
		}
		return nil
	default:
		return fmt.Errorf("unknown upload kind %q", input.Kind)
	}
}

func (s *UploadService) persistURL(ctx context.Context, input ports.UploadInput, url string) error {
	switch input.Kind {
	case ports.UploadKindUser:
		return s.users.SetProfilePicture(ctx, input.TargetID, url)
	case ports.UploadKindAnimal:
		return s.animals.SetProfilePicture(ctx, input.TargetID, url)
	case ports.UploadKindTraining:
		return s.logs.SetVideo(ctx, input.TargetID, url)
	default:
		return fmt.Errorf("unknown upload kind %q", input.Kind)
	}
}
