package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawtracks/training-system/internal/core/ports"
)

func TestAnimalService_Create_ForcesZeroHours(t *testing.T) {
	animals := newStubAnimalRepo()
	svc := NewAnimalService(animals, zerolog.Nop())

	dob := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	animal, err := svc.Create(context.Background(), ports.CreateAnimalInput{
		Name:        "Rex",
		DateOfBirth: &dob,
		OwnerID:     "000000000000000000000001",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if animal.ID == "" {
		t.Fatalf("expected generated id")
	}
	if animal.HoursTrained != 0 {
		t.Fatalf("hoursTrained must start at 0, got %v", animal.HoursTrained)
	}
	if animal.Owner != "000000000000000000000001" {
		t.Fatalf("owner not set: %q", animal.Owner)
	}
	if animal.DateOfBirth == nil || !animal.DateOfBirth.Equal(dob) {
		t.Fatalf("dateOfBirth not preserved: %v", animal.DateOfBirth)
	}
}

func TestAnimalService_Create_RepositoryError(t *testing.T) {
	animals := newStubAnimalRepo()
	animals.insertErr = errors.New("write concern failed")
	svc := NewAnimalService(animals, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateAnimalInput{Name: "Rex"}); err == nil {
		t.Fatalf("expected repository error to surface")
	}
}
