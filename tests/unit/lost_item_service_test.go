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

type lostItemServiceMocks struct {
	lostRepo    *mocks.LostItemRepository
	userRepo    *mocks.UserRepository
	archiveRepo *mocks.ArchiveRepository
	auditRepo   *mocks.AuditLogRepository
	notifSvc    *mocks.NotificationService
}

func newLostItemService() (service.LostItemService, *lostItemServiceMocks) {
	m := &lostItemServiceMocks{
		lostRepo:    new(mocks.LostItemRepository),
		userRepo:    new(mocks.UserRepository),
		archiveRepo: new(mocks.ArchiveRepository),
		auditRepo:   new(mocks.AuditLogRepository),
		notifSvc:    new(mocks.NotificationService),
	}

	svc := service.NewLostItemService(
		m.lostRepo, m.userRepo, m.archiveRepo, m.auditRepo, m.notifSvc, nil,
	)
	return svc, m
}

func validReportInput() domain.ReportLostItemInput {
	return domain.ReportLostItemInput{
		ItemName:         "Bag",
		ItemType:         "Accessory",
		ItemColor:        stringPtr("Black"),
		Description:      "Black leather bag with laptop sleeve",
		LastSeenLocation: "Library",
		LastSeenDate:     "2026-08-18",
	}
}

func TestLostItemService_Report(t *testing.T) {
	ctx := context.Background()
	reporterID := uuid.New()

	t.Run("report gets a case number and a confirmation", func(t *testing.T) {
		svc, m := newLostItemService()

		m.lostRepo.On("NextCaseNumber", ctx).Return("CU20260042", nil).Once()
		m.lostRepo.On("Create", ctx, mock.MatchedBy(func(item *domain.LostItem) bool {
			return item.CaseNumber == "CU20260042" &&
				item.UserID == reporterID &&
				item.Status == domain.LostStatusReported
		})).Return(nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user := &domain.User{ID: reporterID, Email: "student@campus.edu"}
		m.userRepo.On("GetByID", ctx, reporterID).Return(user, nil).Once()

		notif := &domain.Notification{ID: uuid.New(), Type: domain.NotifReportConfirmed}
		m.notifSvc.On("NotifyReportConfirmed", ctx, user, mock.Anything).Return(notif, nil).Once()

		item, err := svc.Report(ctx, reporterID, validReportInput())

		assert.NoError(t, err)
		assert.Equal(t, "CU20260042", item.CaseNumber)
		assert.Equal(t, domain.LostStatusReported, item.Status)

		m.lostRepo.AssertExpectations(t)
		m.notifSvc.AssertExpectations(t)
	})

	t.Run("confirmation failure does not fail the report", func(t *testing.T) {
		svc, m := newLostItemService()

		m.lostRepo.On("NextCaseNumber", ctx).Return("CU20260043", nil).Once()
		m.lostRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user := &domain.User{ID: reporterID, Email: "student@campus.edu"}
		m.userRepo.On("GetByID", ctx, reporterID).Return(user, nil).Once()
		m.notifSvc.On("NotifyReportConfirmed", ctx, user, mock.Anything).
			Return(nil, errors.New("insert notification failed")).Once()

		item, err := svc.Report(ctx, reporterID, validReportInput())

		assert.NoError(t, err)
		assert.NotNil(t, item)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		svc, m := newLostItemService()

		input := validReportInput()
		input.LastSeenDate = "18/08/2026"

		item, err := svc.Report(ctx, reporterID, input)

		assert.True(t, domain.IsValidationError(err))
		assert.Nil(t, item)
		m.lostRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		svc, m := newLostItemService()

		input := validReportInput()
		input.ItemName = ""

		item, err := svc.Report(ctx, reporterID, input)

		assert.True(t, domain.IsValidationError(err))
		assert.Nil(t, item)
		m.lostRepo.AssertNotCalled(t, "NextCaseNumber", mock.Anything)
	})
}

func TestLostItemService_MarkUnclaimed(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	t.Run("open report can be marked unclaimed", func(t *testing.T) {
		svc, m := newLostItemService()

		report := &domain.LostItem{CaseNumber: "CU20260050", Status: domain.LostStatusReported}
		m.lostRepo.On("GetByCaseNumber", ctx, "CU20260050").Return(report, nil).Once()
		m.lostRepo.On("TransitionStatus", ctx, "CU20260050", domain.LostStatusReported, domain.LostStatusUnclaimed).Return(nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.MarkUnclaimed(ctx, staffID, "CU20260050")

		assert.NoError(t, err)
	})

	t.Run("matched report cannot be marked unclaimed", func(t *testing.T) {
		svc, m := newLostItemService()

		report := &domain.LostItem{CaseNumber: "CU20260051", Status: domain.LostStatusMatched}
		m.lostRepo.On("GetByCaseNumber", ctx, "CU20260051").Return(report, nil).Once()
		m.lostRepo.On("TransitionStatus", ctx, "CU20260051", domain.LostStatusReported, domain.LostStatusUnclaimed).
			Return(domain.ErrStatusConflict).Once()

		err := svc.MarkUnclaimed(ctx, staffID, "CU20260051")

		assert.ErrorIs(t, err, domain.ErrStatusConflict)
	})
}

func TestLostItemService_Archive(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	t.Run("claimed report can be archived with a disposition", func(t *testing.T) {
		svc, m := newLostItemService()

		report := &domain.LostItem{CaseNumber: "CU20260060", Status: domain.LostStatusClaimed}
		m.lostRepo.On("GetByCaseNumber", ctx, "CU20260060").Return(report, nil).Once()
		m.archiveRepo.On("CommitArchive", ctx, mock.MatchedBy(func(a *domain.Archive) bool {
			return a.CaseNumber == "CU20260060" && a.Disposition == domain.DispositionReturnedToOwner
		})).Return(nil).Once()
		m.auditRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		archive, err := svc.Archive(ctx, staffID, "CU20260060", domain.DispositionReturnedToOwner)

		assert.NoError(t, err)
		assert.NotNil(t, archive)
	})

	t.Run("invalid disposition is rejected", func(t *testing.T) {
		svc, m := newLostItemService()

		archive, err := svc.Archive(ctx, staffID, "CU20260061", domain.Disposition("Incinerated"))

		assert.True(t, domain.IsValidationError(err))
		assert.Nil(t, archive)
		m.archiveRepo.AssertNotCalled(t, "CommitArchive", mock.Anything, mock.Anything)
	})

	t.Run("open report cannot be archived", func(t *testing.T) {
		svc, m := newLostItemService()

		report := &domain.LostItem{CaseNumber: "CU20260062", Status: domain.LostStatusReported}
		m.lostRepo.On("GetByCaseNumber", ctx, "CU20260062").Return(report, nil).Once()
		m.archiveRepo.On("CommitArchive", ctx, mock.Anything).Return(domain.ErrStatusConflict).Once()

		archive, err := svc.Archive(ctx, staffID, "CU20260062", domain.DispositionDonated)

		assert.ErrorIs(t, err, domain.ErrStatusConflict)
		assert.Nil(t, archive)
	})
}
