package unit_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/service"
	"campus-lostfound/tests/mocks"
)

type matchServiceMocks struct {
	matchRepo *mocks.MatchRepository
	lostRepo  *mocks.LostItemRepository
	foundRepo *mocks.FoundItemRepository
	userRepo  *mocks.UserRepository
	auditRepo *mocks.AuditLogRepository
	notifSvc  *mocks.NotificationService
}

func newMatchService() (service.MatchService, *matchServiceMocks) {
	m := &matchServiceMocks{
		matchRepo: new(mocks.MatchRepository),
		lostRepo:  new(mocks.LostItemRepository),
		foundRepo: new(mocks.FoundItemRepository),
		userRepo:  new(mocks.UserRepository),
		auditRepo: new(mocks.AuditLogRepository),
		notifSvc:  new(mocks.NotificationService),
	}

	svc := service.NewMatchService(
		m.matchRepo, m.lostRepo, m.foundRepo,
		m.userRepo, m.auditRepo, m.notifSvc, nil,
	)
	return svc, m
}

func TestMatchService_Confirm(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	matchID := uuid.New()

	t.Run("pending match can be confirmed", func(t *testing.T) {
		svc, m := newMatchService()

		pending := &domain.Match{ID: matchID, FoundItemID: "FI20260001", CaseNumber: "CU20260001", Status: domain.MatchStatusPending}
		m.matchRepo.On("GetByID", ctx, matchID).Return(pending, nil).Once()
		m.matchRepo.On("CommitConfirm", ctx, pending).Return([]string{}, nil).
			Run(func(args mock.Arguments) {
				mt := args.Get(1).(*domain.Match)
				mt.Status = domain.MatchStatusConfirmed
				mt.Confirmation = true
			}).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		match, err := svc.Confirm(ctx, staffID, matchID)

		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusConfirmed, match.Status)
		assert.True(t, match.Confirmation)
	})

	t.Run("already settled match is rejected", func(t *testing.T) {
		svc, m := newMatchService()

		confirmed := &domain.Match{ID: matchID, Status: domain.MatchStatusConfirmed}
		m.matchRepo.On("GetByID", ctx, matchID).Return(confirmed, nil).Once()

		match, err := svc.Confirm(ctx, staffID, matchID)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Nil(t, match)
		m.matchRepo.AssertNotCalled(t, "CommitConfirm", mock.Anything, mock.Anything)
	})

	t.Run("concurrent settle surfaces conflict", func(t *testing.T) {
		svc, m := newMatchService()

		pending := &domain.Match{ID: matchID, Status: domain.MatchStatusPending}
		m.matchRepo.On("GetByID", ctx, matchID).Return(pending, nil).Once()
		m.matchRepo.On("CommitConfirm", ctx, pending).Return(nil, domain.ErrStatusConflict).Once()

		match, err := svc.Confirm(ctx, staffID, matchID)

		assert.ErrorIs(t, err, domain.ErrStatusConflict)
		assert.Nil(t, match)
	})

	t.Run("unknown match", func(t *testing.T) {
		svc, m := newMatchService()

		m.matchRepo.On("GetByID", ctx, matchID).Return(nil, nil).Once()

		match, err := svc.Confirm(ctx, staffID, matchID)

		assert.ErrorIs(t, err, service.ErrMatchNotFound)
		assert.Nil(t, match)
	})
}

func TestMatchService_Reject(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	matchID := uuid.New()

	t.Run("pending match can be rejected", func(t *testing.T) {
		svc, m := newMatchService()

		pending := &domain.Match{ID: matchID, FoundItemID: "FI20260002", CaseNumber: "CU20260002", Status: domain.MatchStatusPending}
		m.matchRepo.On("GetByID", ctx, matchID).Return(pending, nil).Once()
		m.matchRepo.On("CommitReject", ctx, pending).Return(nil).
			Run(func(args mock.Arguments) {
				mt := args.Get(1).(*domain.Match)
				mt.Status = domain.MatchStatusRejected
			}).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		match, err := svc.Reject(ctx, staffID, matchID)

		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusRejected, match.Status)
	})

	t.Run("rejected match stays rejected", func(t *testing.T) {
		svc, m := newMatchService()

		rejected := &domain.Match{ID: matchID, Status: domain.MatchStatusRejected}
		m.matchRepo.On("GetByID", ctx, matchID).Return(rejected, nil).Once()

		match, err := svc.Reject(ctx, staffID, matchID)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Nil(t, match)
	})
}

func TestMatchService_Claim(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	matchID := uuid.New()

	t.Run("confirmed match can be claimed", func(t *testing.T) {
		svc, m := newMatchService()

		confirmed := &domain.Match{ID: matchID, FoundItemID: "FI20260003", CaseNumber: "CU20260003", Status: domain.MatchStatusConfirmed, Confirmation: true}
		m.matchRepo.On("GetByID", ctx, matchID).Return(confirmed, nil).Once()
		m.matchRepo.On("CommitClaim", ctx, confirmed).Return(nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		match, err := svc.Claim(ctx, staffID, matchID)

		assert.NoError(t, err)
		assert.Equal(t, confirmed, match)
	})

	t.Run("pending match cannot be claimed", func(t *testing.T) {
		svc, m := newMatchService()

		pending := &domain.Match{ID: matchID, Status: domain.MatchStatusPending}
		m.matchRepo.On("GetByID", ctx, matchID).Return(pending, nil).Once()

		match, err := svc.Claim(ctx, staffID, matchID)

		assert.ErrorIs(t, err, service.ErrMatchNotConfirmed)
		assert.Nil(t, match)
		m.matchRepo.AssertNotCalled(t, "CommitClaim", mock.Anything, mock.Anything)
	})

	t.Run("claim race surfaces conflict", func(t *testing.T) {
		svc, m := newMatchService()

		confirmed := &domain.Match{ID: matchID, Status: domain.MatchStatusConfirmed}
		m.matchRepo.On("GetByID", ctx, matchID).Return(confirmed, nil).Once()
		m.matchRepo.On("CommitClaim", ctx, confirmed).Return(domain.ErrStatusConflict).Once()

		match, err := svc.Claim(ctx, staffID, matchID)

		assert.ErrorIs(t, err, domain.ErrStatusConflict)
		assert.Nil(t, match)
	})
}

func TestMatchService_Remind(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	matchID := uuid.New()
	reporterID := uuid.New()

	t.Run("reminder goes to the reporter", func(t *testing.T) {
		svc, m := newMatchService()

		pending := &domain.Match{ID: matchID, FoundItemID: "FI20260004", CaseNumber: "CU20260004", Status: domain.MatchStatusPending}
		report := &domain.LostItem{CaseNumber: "CU20260004", UserID: reporterID, Status: domain.LostStatusMatched}
		found := &domain.FoundItem{ID: "FI20260004", Status: domain.FoundStatusMatched}
		user := &domain.User{ID: reporterID, Email: "student@campus.edu"}

		m.matchRepo.On("GetByID", ctx, matchID).Return(pending, nil).Once()
		m.lostRepo.On("GetByCaseNumber", ctx, "CU20260004").Return(report, nil).Once()
		m.foundRepo.On("GetByID", ctx, "FI20260004").Return(found, nil).Once()
		m.userRepo.On("GetByID", ctx, reporterID).Return(user, nil).Once()

		notif := &domain.Notification{ID: uuid.New(), UserID: reporterID, Type: domain.NotifClaimReminder}
		m.notifSvc.On("NotifyClaimReminder", ctx, user, report, found).Return(notif, nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		got, err := svc.Remind(ctx, staffID, matchID)

		assert.NoError(t, err)
		assert.Equal(t, notif, got)
	})

	t.Run("no reminder for a rejected match", func(t *testing.T) {
		svc, m := newMatchService()

		rejected := &domain.Match{ID: matchID, Status: domain.MatchStatusRejected}
		m.matchRepo.On("GetByID", ctx, matchID).Return(rejected, nil).Once()

		got, err := svc.Remind(ctx, staffID, matchID)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Nil(t, got)
		m.notifSvc.AssertNotCalled(t, "NotifyClaimReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
