package service

import (
	"context"

	"github.com/pawtracks/training-system/internal/core/ports"
)

const defaultPageSize = 10

// AdminService lists each collection in identifier order with cursor pagination.
type AdminService struct {
	users   ports.UserRepository
	animals ports.AnimalRepository
	logs    ports.TrainingLogRepository
}

func NewAdminService(
	users ports.UserRepository,
	animals ports.AnimalRepository,
	logs ports.TrainingLogRepository,
) *AdminService {
	return &AdminService{users: users, animals: animals, logs: logs}
}

func (s *AdminService) ListUsers(ctx context.Context, input ports.PageInput) (*ports.UserPage, error) {
	items, err := s.users.List(ctx, pageSize(input.Size), input.LastID)
	if err != nil {
		return nil, err
	}
	page := &ports.UserPage{Items: items}
	if len(items) > 0 {
		page.LastID = items[len(items)-1].ID
	}
	return page, nil
}

func (s *AdminService) ListAnimals(ctx context.Context, input ports.PageInput) (*ports.AnimalPage, error) {
	items, err := s.animals.List(ctx, pageSize(input.Size), input.LastID)
	if err != nil {
		return nil, err
	}
	page := &ports.AnimalPage{Items: items}
	if len(items) > 0 {
		page.LastID = items[len(items)-1].ID
	}
	return page, nil
}

func (s *AdminService) ListTrainingLogs(ctx context.Context, input ports.PageInput) (*ports.TrainingLogPage, error) {
	items, err := s.logs.List(ctx, pageSize(input.Size), input.LastID)
	if err != nil {
		return nil, err
	}
	page := &ports.TrainingLogPage{Items: items}
	if len(items) > 0 {
		page.LastID = items[len(items)-1].ID
	}
	return page, nil
}

func pageSize(size int64) int64 {
	if size <= 0 {
		return defaultPageSize
	}
	return size
}
