package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID        `json:"notification_id" db:"notification_id"`
	CaseNumber *string          `json:"case_number,omitempty" db:"case_number"`
	UserID     uuid.UUID        `json:"user_id" db:"user_id"`
	Type       NotificationType `json:"notification_type" db:"notification_type"`
	Message    string           `json:"message" db:"message"`
	Status     DeliveryStatus   `json:"status" db:"status"`
	CreatedAt  time.Time        `json:"notification_date" db:"notification_date"`
}

type NotificationType string

const (
	NotifReportConfirmed NotificationType = "Report_Confirmed"
	NotifItemFound       NotificationType = "Item_Found"
	NotifMatchFound      NotificationType = "Match_Found"
	NotifClaimReminder   NotificationType = "Claim_Reminder"
)

// DeliveryStatus tracks the outcome of the external send attempt. It is
// independent of whether the business transaction that produced the
// notification succeeded.
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "Pending"
	DeliverySent    DeliveryStatus = "Sent"
	DeliveryFailed  DeliveryStatus = "Failed"
)
