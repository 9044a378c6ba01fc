package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
)

type LostItemRepository struct {
	mock.Mock
}

func (m *LostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *LostItemRepository) GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.LostItem, error) {
	args := m.Called(ctx, caseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LostItem), args.Error(1)
}

func (m *LostItemRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.LostItem, int64, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.LostItem), args.Get(1).(int64), args.Error(2)
}

func (m *LostItemRepository) List(ctx context.Context, status *domain.LostItemStatus, params domain.PaginationParams) ([]domain.LostItem, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.LostItem), args.Get(1).(int64), args.Error(2)
}

func (m *LostItemRepository) ListOpenReports(ctx context.Context) ([]domain.LostItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LostItem), args.Error(1)
}

func (m *LostItemRepository) NextCaseNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *LostItemRepository) TransitionStatus(ctx context.Context, caseNumber string, from, to domain.LostItemStatus) error {
	args := m.Called(ctx, caseNumber, from, to)
	return args.Error(0)
}

func (m *LostItemRepository) CountByStatus(ctx context.Context) (map[domain.LostItemStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.LostItemStatus]int64), args.Error(1)
}
