package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/repository"
)

// NotificationService turns lifecycle events into notification records and
// attempts delivery over the email channel. Delivery follows an explicit
// recover-locally policy: a failed or timed-out send marks the record
// Failed and is logged, but never aborts or rolls back the business
// transaction that produced the event. Errors returned by these methods
// concern the record itself, not its delivery.
type NotificationService interface {
	NotifyReportConfirmed(ctx context.Context, user *domain.User, report *domain.LostItem) (*domain.Notification, error)
	NotifyMatchFound(ctx context.Context, user *domain.User, report *domain.LostItem, found *domain.FoundItem) (*domain.Notification, error)
	NotifyClaimReminder(ctx context.Context, user *domain.User, report *domain.LostItem, found *domain.FoundItem) (*domain.Notification, error)
	List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
}

type notificationService struct {
	notifRepo   repository.NotificationRepository
	email       EmailService
	sendTimeout time.Duration
}

func NewNotificationService(notifRepo repository.NotificationRepository, email EmailService, sendTimeout time.Duration) NotificationService {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &notificationService{
		notifRepo:   notifRepo,
		email:       email,
		sendTimeout: sendTimeout,
	}
}

func (s *notificationService) NotifyReportConfirmed(ctx context.Context, user *domain.User, report *domain.LostItem) (*domain.Notification, error) {
	notif := &domain.Notification{
		ID:         uuid.New(),
		CaseNumber: &report.CaseNumber,
		UserID:     user.ID,
		Type:       domain.NotifReportConfirmed,
		Message:    fmt.Sprintf("Lost item report confirmed - Case #%s", report.CaseNumber),
		Status:     domain.DeliveryPending,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Lost Item Report Confirmation - Case #%s", report.CaseNumber)
	s.dispatch(ctx, notif, user.Email, subject, reportConfirmedBody(user, report))
	return notif, nil
}

func (s *notificationService) NotifyMatchFound(ctx context.Context, user *domain.User, report *domain.LostItem, found *domain.FoundItem) (*domain.Notification, error) {
	notif := &domain.Notification{
		ID:         uuid.New(),
		CaseNumber: &report.CaseNumber,
		UserID:     user.ID,
		Type:       domain.NotifMatchFound,
		Message:    fmt.Sprintf("Potential match found for %s", report.ItemName),
		Status:     domain.DeliveryPending,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}

	s.dispatch(ctx, notif, user.Email, "Item Match Found - Campus Lost & Found", matchFoundBody(user, report, found))
	return notif, nil
}

func (s *notificationService) NotifyClaimReminder(ctx context.Context, user *domain.User, report *domain.LostItem, found *domain.FoundItem) (*domain.Notification, error) {
	notif := &domain.Notification{
		ID:         uuid.New(),
		CaseNumber: &report.CaseNumber,
		UserID:     user.ID,
		Type:       domain.NotifClaimReminder,
		Message:    fmt.Sprintf("Reminder: claim your matched item for Case #%s", report.CaseNumber),
		Status:     domain.DeliveryPending,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}

	s.dispatch(ctx, notif, user.Email, "Claim Reminder - Campus Lost & Found", claimReminderBody(user, report, found))
	return notif, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

// dispatch attempts the external send under the configured timeout and
// records the outcome on the notification. Failures stay local.
func (s *notificationService) dispatch(ctx context.Context, notif *domain.Notification, toEmail, subject, htmlBody string) {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	status := domain.DeliverySent
	if err := s.email.Send(sendCtx, toEmail, subject, htmlBody); err != nil {
		status = domain.DeliveryFailed
		log.Printf("notification %s: delivery to %s failed: %v", notif.ID, toEmail, err)
	}

	notif.Status = status
	if err := s.notifRepo.UpdateStatus(ctx, notif.ID, status); err != nil {
		log.Printf("notification %s: failed to record delivery status: %v", notif.ID, err)
	}
}

func reportConfirmedBody(user *domain.User, report *domain.LostItem) string {
	return fmt.Sprintf(`
<h2>Lost Item Report Confirmation</h2>
<p>Dear %s,</p>
<p>Your lost item has been successfully reported.</p>
<p><strong>Case Number:</strong> %s</p>
<p><strong>Item:</strong> %s</p>
<p><strong>Description:</strong> %s</p>
<p>We will notify you if your item is found.</p>
<p>Best regards,<br>Campus Lost &amp; Found Team</p>`,
		user.FullName, report.CaseNumber, report.ItemName, report.Description)
}

func matchFoundBody(user *domain.User, report *domain.LostItem, found *domain.FoundItem) string {
	return fmt.Sprintf(`
<h2>Item Match Found!</h2>
<p>Dear %s,</p>
<p>We found a potential match for your lost item:</p>
<ul>
	<li><strong>Your Report:</strong> Case #%s</li>
	<li><strong>Item:</strong> %s</li>
	<li><strong>Found Item ID:</strong> %s</li>
</ul>
<p>Please contact the Lost and Found office to verify and claim your item.</p>
<p>Best regards,<br>Campus Lost &amp; Found Team</p>`,
		user.FullName, report.CaseNumber, report.ItemName, found.ID)
}

func claimReminderBody(user *domain.User, report *domain.LostItem, found *domain.FoundItem) string {
	return fmt.Sprintf(`
<h2>Claim Reminder</h2>
<p>Dear %s,</p>
<p>An item matching your report (Case #%s) is still waiting for you at the
Lost and Found office (Found Item ID: %s).</p>
<p>Unclaimed items are archived after a holding period, so please come by
soon to verify and collect it.</p>
<p>Best regards,<br>Campus Lost &amp; Found Team</p>`,
		user.FullName, report.CaseNumber, found.ID)
}
