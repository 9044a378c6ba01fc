package unit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/service"
	"campus-lostfound/tests/mocks"
)

func TestNotificationService_DeliveryFailureStaysLocal(t *testing.T) {
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "student@campus.edu", FullName: "Student"}
	report := &domain.LostItem{
		CaseNumber:  "CU20260001",
		UserID:      user.ID,
		ItemName:    "Bag",
		Description: "Black leather bag",
		Status:      domain.LostStatusReported,
	}

	t.Run("failed send marks the record Failed and returns it", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		email := new(mocks.EmailService)
		svc := service.NewNotificationService(notifRepo, email, time.Second)

		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == user.ID && n.Status == domain.DeliveryPending &&
				n.Type == domain.NotifReportConfirmed
		})).Return(nil).Once()

		email.On("Send", mock.Anything, user.Email, mock.Anything, mock.Anything).
			Return(errors.New("smtp unreachable")).Once()

		notifRepo.On("UpdateStatus", ctx, mock.Anything, domain.DeliveryFailed).Return(nil).Once()

		notif, err := svc.NotifyReportConfirmed(ctx, user, report)

		assert.NoError(t, err, "delivery failure must not surface to the caller")
		assert.NotNil(t, notif)
		assert.Equal(t, domain.DeliveryFailed, notif.Status)

		notifRepo.AssertExpectations(t)
		email.AssertExpectations(t)
	})

	t.Run("successful send marks the record Sent", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		email := new(mocks.EmailService)
		svc := service.NewNotificationService(notifRepo, email, time.Second)

		notifRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		email.On("Send", mock.Anything, user.Email, mock.Anything, mock.Anything).Return(nil).Once()
		notifRepo.On("UpdateStatus", ctx, mock.Anything, domain.DeliverySent).Return(nil).Once()

		notif, err := svc.NotifyReportConfirmed(ctx, user, report)

		assert.NoError(t, err)
		assert.Equal(t, domain.DeliverySent, notif.Status)
	})

	t.Run("record failure does surface", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		email := new(mocks.EmailService)
		svc := service.NewNotificationService(notifRepo, email, time.Second)

		notifRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		notif, err := svc.NotifyReportConfirmed(ctx, user, report)

		assert.Error(t, err)
		assert.Nil(t, notif)
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("status update failure is swallowed", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		email := new(mocks.EmailService)
		svc := service.NewNotificationService(notifRepo, email, time.Second)

		found := &domain.FoundItem{ID: "FI20260001", ItemName: "Bag"}

		notifRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		email.On("Send", mock.Anything, user.Email, mock.Anything, mock.Anything).Return(nil).Once()
		notifRepo.On("UpdateStatus", ctx, mock.Anything, domain.DeliverySent).
			Return(errors.New("update failed")).Once()

		notif, err := svc.NotifyMatchFound(ctx, user, report, found)

		assert.NoError(t, err)
		assert.NotNil(t, notif)
	})
}

func TestNotificationService_SendTimeout(t *testing.T) {
	ctx := context.Background()

	user := &domain.User{ID: uuid.New(), Email: "student@campus.edu"}
	report := &domain.LostItem{CaseNumber: "CU20260002", UserID: user.ID, ItemName: "Bag"}

	notifRepo := new(mocks.NotificationRepository)
	email := new(mocks.EmailService)
	svc := service.NewNotificationService(notifRepo, email, 50*time.Millisecond)

	notifRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	// A channel slower than the timeout reports a context error; the
	// record must end up Failed.
	email.On("Send", mock.Anything, user.Email, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sendCtx := args.Get(0).(context.Context)
			<-sendCtx.Done()
		}).
		Return(context.DeadlineExceeded).Once()

	notifRepo.On("UpdateStatus", ctx, mock.Anything, domain.DeliveryFailed).Return(nil).Once()

	notif, err := svc.NotifyReportConfirmed(ctx, user, report)

	assert.NoError(t, err)
	assert.Equal(t, domain.DeliveryFailed, notif.Status)
}
