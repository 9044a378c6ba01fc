package unit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/service"
	"campus-lostfound/tests/mocks"
)

type foundItemServiceMocks struct {
	foundRepo  *mocks.FoundItemRepository
	lostRepo   *mocks.LostItemRepository
	matchRepo  *mocks.MatchRepository
	officeRepo *mocks.OfficeRepository
	userRepo   *mocks.UserRepository
	auditRepo  *mocks.AuditLogRepository
	notifSvc   *mocks.NotificationService
}

func newFoundItemService() (service.FoundItemService, *foundItemServiceMocks) {
	m := &foundItemServiceMocks{
		foundRepo:  new(mocks.FoundItemRepository),
		lostRepo:   new(mocks.LostItemRepository),
		matchRepo:  new(mocks.MatchRepository),
		officeRepo: new(mocks.OfficeRepository),
		userRepo:   new(mocks.UserRepository),
		auditRepo:  new(mocks.AuditLogRepository),
		notifSvc:   new(mocks.NotificationService),
	}

	svc := service.NewFoundItemService(
		m.foundRepo, m.lostRepo, m.matchRepo, m.officeRepo,
		m.userRepo, m.auditRepo, m.notifSvc, nil,
	)
	return svc, m
}

func validLogInput() domain.LogFoundItemInput {
	return domain.LogFoundItemInput{
		OfficeID:      "SECURITY",
		ItemName:      "Black Leather Bag",
		ItemColor:     "Black",
		Description:   "Leather bag found near the library",
		FoundDate:     "2026-08-20",
		FoundLocation: "Library entrance",
	}
}

func TestFoundItemService_Log(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	office := &domain.Office{ID: "SECURITY", Name: "Security Office"}

	t.Run("one found item can match several reports", func(t *testing.T) {
		svc, m := newFoundItemService()

		reporterA := uuid.New()
		reporterB := uuid.New()
		reports := []domain.LostItem{
			{CaseNumber: "CU20260001", UserID: reporterA, ItemName: "Bag", ItemColor: stringPtr("Black"), Status: domain.LostStatusReported},
			{CaseNumber: "CU20260002", UserID: reporterB, ItemName: "Leather Bag", ItemColor: stringPtr("black"), Status: domain.LostStatusReported},
		}

		m.officeRepo.On("GetByID", ctx, "SECURITY").Return(office, nil).Once()
		m.foundRepo.On("NextID", ctx).Return("FI20260001", nil).Once()
		m.lostRepo.On("ListOpenReports", ctx).Return(reports, nil).Once()

		commit := &domain.MatchCommitResult{
			Committed: []domain.Match{
				{ID: uuid.New(), FoundItemID: "FI20260001", CaseNumber: "CU20260001", Status: domain.MatchStatusPending},
				{ID: uuid.New(), FoundItemID: "FI20260001", CaseNumber: "CU20260002", Status: domain.MatchStatusPending},
			},
		}
		m.matchRepo.On("CommitFoundItemLog", ctx, mock.MatchedBy(func(item *domain.FoundItem) bool {
			return item.ID == "FI20260001" && item.Status == domain.FoundStatusFound
		}), mock.MatchedBy(func(candidates []domain.MatchCandidate) bool {
			return len(candidates) == 2
		})).Return(commit, nil).Once()

		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		userA := &domain.User{ID: reporterA, Email: "a@campus.edu", FullName: "Student A"}
		userB := &domain.User{ID: reporterB, Email: "b@campus.edu", FullName: "Student B"}
		m.userRepo.On("GetByID", ctx, reporterA).Return(userA, nil).Once()
		m.userRepo.On("GetByID", ctx, reporterB).Return(userB, nil).Once()

		notifA := &domain.Notification{ID: uuid.New(), UserID: reporterA, Status: domain.DeliverySent}
		notifB := &domain.Notification{ID: uuid.New(), UserID: reporterB, Status: domain.DeliverySent}
		m.notifSvc.On("NotifyMatchFound", ctx, userA, mock.Anything, mock.Anything).Return(notifA, nil).Once()
		m.notifSvc.On("NotifyMatchFound", ctx, userB, mock.Anything, mock.Anything).Return(notifB, nil).Once()

		result, err := svc.Log(ctx, staffID, validLogInput())

		assert.NoError(t, err)
		assert.Len(t, result.Matches, 2)
		assert.Len(t, result.Notifications, 2)
		assert.Empty(t, result.DroppedCaseNumbers)

		m.matchRepo.AssertExpectations(t)
		m.notifSvc.AssertExpectations(t)
	})

	t.Run("no matching reports leaves item unmatched and sends nothing", func(t *testing.T) {
		svc, m := newFoundItemService()

		m.officeRepo.On("GetByID", ctx, "SECURITY").Return(office, nil).Once()
		m.foundRepo.On("NextID", ctx).Return("FI20260002", nil).Once()
		m.lostRepo.On("ListOpenReports", ctx).Return([]domain.LostItem{
			{CaseNumber: "CU20260003", ItemName: "Umbrella", ItemColor: stringPtr("Red"), Status: domain.LostStatusReported},
		}, nil).Once()

		m.matchRepo.On("CommitFoundItemLog", ctx, mock.Anything, mock.MatchedBy(func(candidates []domain.MatchCandidate) bool {
			return len(candidates) == 0
		})).Return(&domain.MatchCommitResult{}, nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		result, err := svc.Log(ctx, staffID, validLogInput())

		assert.NoError(t, err)
		assert.Empty(t, result.Matches)
		assert.Empty(t, result.Notifications)
		assert.Equal(t, domain.FoundStatusFound, result.FoundItem.Status)

		m.notifSvc.AssertNotCalled(t, "NotifyMatchFound", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("dropped case numbers are surfaced", func(t *testing.T) {
		svc, m := newFoundItemService()

		reporter := uuid.New()
		m.officeRepo.On("GetByID", ctx, "SECURITY").Return(office, nil).Once()
		m.foundRepo.On("NextID", ctx).Return("FI20260003", nil).Once()
		m.lostRepo.On("ListOpenReports", ctx).Return([]domain.LostItem{
			{CaseNumber: "CU20260004", UserID: reporter, ItemName: "Bag", ItemColor: stringPtr("Black"), Status: domain.LostStatusReported},
		}, nil).Once()

		m.matchRepo.On("CommitFoundItemLog", ctx, mock.Anything, mock.Anything).
			Return(&domain.MatchCommitResult{Dropped: []string{"CU20260004"}}, nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		result, err := svc.Log(ctx, staffID, validLogInput())

		assert.NoError(t, err)
		assert.Empty(t, result.Matches)
		assert.Equal(t, []string{"CU20260004"}, result.DroppedCaseNumbers)
		m.notifSvc.AssertNotCalled(t, "NotifyMatchFound", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("persistence failure rolls back and notifies nobody", func(t *testing.T) {
		svc, m := newFoundItemService()

		m.officeRepo.On("GetByID", ctx, "SECURITY").Return(office, nil).Once()
		m.foundRepo.On("NextID", ctx).Return("FI20260004", nil).Once()
		m.lostRepo.On("ListOpenReports", ctx).Return([]domain.LostItem{
			{CaseNumber: "CU20260005", ItemName: "Bag", ItemColor: stringPtr("Black"), Status: domain.LostStatusReported},
		}, nil).Once()

		m.matchRepo.On("CommitFoundItemLog", ctx, mock.Anything, mock.Anything).
			Return(nil, errors.New("insert match: connection reset")).Once()

		result, err := svc.Log(ctx, staffID, validLogInput())

		assert.Error(t, err)
		assert.Nil(t, result)
		m.auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.notifSvc.AssertNotCalled(t, "NotifyMatchFound", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("notification failure does not fail the logging", func(t *testing.T) {
		svc, m := newFoundItemService()

		reporter := uuid.New()
		m.officeRepo.On("GetByID", ctx, "SECURITY").Return(office, nil).Once()
		m.foundRepo.On("NextID", ctx).Return("FI20260005", nil).Once()
		m.lostRepo.On("ListOpenReports", ctx).Return([]domain.LostItem{
			{CaseNumber: "CU20260006", UserID: reporter, ItemName: "Bag", ItemColor: stringPtr("Black"), Status: domain.LostStatusReported},
		}, nil).Once()

		commit := &domain.MatchCommitResult{
			Committed: []domain.Match{
				{ID: uuid.New(), FoundItemID: "FI20260005", CaseNumber: "CU20260006", Status: domain.MatchStatusPending},
			},
		}
		m.matchRepo.On("CommitFoundItemLog", ctx, mock.Anything, mock.Anything).Return(commit, nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user := &domain.User{ID: reporter, Email: "c@campus.edu"}
		m.userRepo.On("GetByID", ctx, reporter).Return(user, nil).Once()
		m.notifSvc.On("NotifyMatchFound", ctx, user, mock.Anything, mock.Anything).
			Return(nil, errors.New("insert notification failed")).Once()

		result, err := svc.Log(ctx, staffID, validLogInput())

		assert.NoError(t, err)
		assert.Len(t, result.Matches, 1)
		assert.Empty(t, result.Notifications)
	})

	t.Run("missing color is rejected before any write", func(t *testing.T) {
		svc, m := newFoundItemService()

		input := validLogInput()
		input.ItemColor = ""

		result, err := svc.Log(ctx, staffID, input)

		assert.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Nil(t, result)
		m.matchRepo.AssertNotCalled(t, "CommitFoundItemLog", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown office is rejected", func(t *testing.T) {
		svc, m := newFoundItemService()

		m.officeRepo.On("GetByID", ctx, "SECURITY").Return(nil, nil).Once()

		result, err := svc.Log(ctx, staffID, validLogInput())

		assert.True(t, domain.IsValidationError(err))
		assert.Nil(t, result)
		m.foundRepo.AssertNotCalled(t, "NextID", mock.Anything)
	})
}

func TestFoundItemService_Archive(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	t.Run("found item can be archived", func(t *testing.T) {
		svc, m := newFoundItemService()

		item := &domain.FoundItem{ID: "FI20260010", Status: domain.FoundStatusFound}
		m.foundRepo.On("GetByID", ctx, "FI20260010").Return(item, nil).Once()
		m.foundRepo.On("TransitionStatus", ctx, "FI20260010", domain.FoundStatusFound, domain.FoundStatusArchived).Return(nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.Archive(ctx, staffID, "FI20260010")

		assert.NoError(t, err)
		m.foundRepo.AssertExpectations(t)
	})

	t.Run("matched item cannot be archived", func(t *testing.T) {
		svc, m := newFoundItemService()

		item := &domain.FoundItem{ID: "FI20260011", Status: domain.FoundStatusMatched}
		m.foundRepo.On("GetByID", ctx, "FI20260011").Return(item, nil).Once()

		err := svc.Archive(ctx, staffID, "FI20260011")

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		m.foundRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, m := newFoundItemService()

		m.foundRepo.On("GetByID", ctx, "FI99999999").Return(nil, nil).Once()

		err := svc.Archive(ctx, staffID, "FI99999999")

		assert.ErrorIs(t, err, service.ErrFoundItemNotFound)
	})
}
