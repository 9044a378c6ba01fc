package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
)

type OfficeRepository struct {
	mock.Mock
}

func (m *OfficeRepository) Create(ctx context.Context, office *domain.Office) error {
	args := m.Called(ctx, office)
	return args.Error(0)
}

func (m *OfficeRepository) GetByID(ctx context.Context, id string) (*domain.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}

func (m *OfficeRepository) List(ctx context.Context) ([]domain.Office, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Office), args.Error(1)
}

func (m *OfficeRepository) Seed(ctx context.Context, offices []domain.Office) error {
	args := m.Called(ctx, offices)
	return args.Error(0)
}
