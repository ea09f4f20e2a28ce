package service

import (
	"context"
	"fmt"

	"github.com/pawtracks/training-system/internal/core/domain"
)

// stubAnimalRepo and stubTrainingLogRepo back the service tests with in-memory
// slices. IDs are zero-padded hex counters so lexicographic order matches
// insertion order, same as ObjectIDs in practice.

type stubAnimalRepo struct {
	animals   []*domain.Animal
	nextID    int
	insertErr error
}

func newStubAnimalRepo() *stubAnimalRepo {
	return &stubAnimalRepo{}
}

func (r *stubAnimalRepo) Insert(_ context.Context, animal *domain.Animal) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	r.nextID++
	clone := *animal
	clone.ID = fmt.Sprintf("%024x", r.nextID)
	r.animals = append(r.animals, &clone)
	return clone.ID, nil
}

func (r *stubAnimalRepo) FindByID(_ context.Context, id string) (*domain.Animal, error) {
	for _, a := range r.animals {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAnimalNotFound
}

func (r *stubAnimalRepo) List(_ context.Context, limit int64, afterID string) ([]*domain.Animal, error) {
	var out []*domain.Animal
	for _, a := range r.animals {
		if afterID != "" && a.ID <= afterID {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAnimalRepo) SetHoursTrained(_ context.Context, id string, hours float64) error {
	for _, a := range r.animals {
		if a.ID == id {
			a.HoursTrained = hours
			return nil
		}
	}
	return domain.ErrAnimalNotFound
}

func (r *stubAnimalRepo) SetProfilePicture(_ context.Context, id, url string) error {
	for _, a := range r.animals {
		if a.ID == id {
			a.ProfilePicture = url
			return nil
		}
	}
	return domain.ErrAnimalNotFound
}

type stubTrainingLogRepo struct {
	logs   []*domain.TrainingLog
	nextID int
}

func newStubTrainingLogRepo() *stubTrainingLogRepo {
	return &stubTrainingLogRepo{}
}

func (r *stubTrainingLogRepo) Insert(_ context.Context, log *domain.TrainingLog) (string, error) {
	r.nextID++
	clone := *log
	clone.ID = fmt.Sprintf("%024x", r.nextID)
	r.logs = append(r.logs, &clone)
	return clone.ID, nil
}

func (r *stubTrainingLogRepo) FindByID(_ context.Context, id string) (*domain.TrainingLog, error) {
	for _, l := range r.logs {
		if l.ID == id {
			clone := *l
			return &clone, nil
		}
	}
	return nil, domain.ErrTrainingLogNotFound
}

func (r *stubTrainingLogRepo) List(_ context.Context, limit int64, afterID string) ([]*domain.TrainingLog, error) {
	var out []*domain.TrainingLog
	for _, l := range r.logs {
		if afterID != "" && l.ID <= afterID {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		clone := *l
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTrainingLogRepo) SetVideo(_ context.Context, id, url string) error {
	for _, l := range r.logs {
		if l.ID == id {
			l.TrainingLogVideo = url
			return nil
		}
	}
	return domain.ErrTrainingLogNotFound
}
