package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) NotifyReportConfirmed(ctx context.Context, user *domain.User, report *domain.LostItem) (*domain.Notification, error) {
	args := m.Called(ctx, user, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) NotifyMatchFound(ctx context.Context, user *domain.User, report *domain.LostItem, found *domain.FoundItem) (*domain.Notification, error) {
	args := m.Called(ctx, user, report, found)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) NotifyClaimReminder(ctx context.Context, user *domain.User, report *domain.LostItem, found *domain.FoundItem) (*domain.Notification, error) {
	args := m.Called(ctx, user, report, found)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}
