package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
)

type MatchRepository struct {
	mock.Mock
}

func (m *MatchRepository) CommitFoundItemLog(ctx context.Context, item *domain.FoundItem, candidates []domain.MatchCandidate) (*domain.MatchCommitResult, error) {
	args := m.Called(ctx, item, candidates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchCommitResult), args.Error(1)
}

func (m *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MatchRepository) ListByFoundItem(ctx context.Context, foundItemID string) ([]domain.Match, error) {
	args := m.Called(ctx, foundItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

func (m *MatchRepository) List(ctx context.Context, status *domain.MatchStatus, params domain.PaginationParams) ([]domain.Match, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.Match), args.Get(1).(int64), args.Error(2)
}

func (m *MatchRepository) CommitConfirm(ctx context.Context, match *domain.Match) ([]string, error) {
	args := m.Called(ctx, match)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MatchRepository) CommitReject(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MatchRepository) CommitClaim(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MatchRepository) CountByStatus(ctx context.Context) (map[domain.MatchStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.MatchStatus]int64), args.Error(1)
}
