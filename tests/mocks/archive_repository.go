package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
)

type ArchiveRepository struct {
	mock.Mock
}

func (m *ArchiveRepository) CommitArchive(ctx context.Context, archive *domain.Archive) error {
	args := m.Called(ctx, archive)
	return args.Error(0)
}

func (m *ArchiveRepository) ListByCase(ctx context.Context, caseNumber string) ([]domain.Archive, error) {
	args := m.Called(ctx, caseNumber)
	return args.Get(0).([]domain.Archive), args.Error(1)
}
