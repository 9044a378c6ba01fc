package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
)

type FoundItemRepository struct {
	mock.Mock
}

func (m *FoundItemRepository) GetByID(ctx context.Context, id string) (*domain.FoundItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoundItem), args.Error(1)
}

func (m *FoundItemRepository) List(ctx context.Context, status *domain.FoundItemStatus, params domain.PaginationParams) ([]domain.FoundItem, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.FoundItem), args.Get(1).(int64), args.Error(2)
}

func (m *FoundItemRepository) NextID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *FoundItemRepository) TransitionStatus(ctx context.Context, id string, from, to domain.FoundItemStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *FoundItemRepository) CountByStatus(ctx context.Context) (map[domain.FoundItemStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.FoundItemStatus]int64), args.Error(1)
}
