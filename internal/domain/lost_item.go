package domain

import (
	"time"

	"github.com/google/uuid"
)

type LostItem struct {
	CaseNumber       string         `json:"case_number" db:"case_number"`
	UserID           uuid.UUID      `json:"user_id" db:"user_id"`
	ItemName         string         `json:"item_name" db:"item_name"`
	ItemType         string         `json:"item_type" db:"item_type"`
	ItemColor        *string        `json:"item_color,omitempty" db:"item_color"`
	Brand            *string        `json:"brand,omitempty" db:"brand"`
	Description      string         `json:"description" db:"description"`
	LastSeenLocation string         `json:"last_seen_location" db:"last_seen_location"`
	LastSeenDate     time.Time      `json:"last_seen_date" db:"last_seen_date"`
	SubmissionDate   time.Time      `json:"submission_date" db:"submission_date"`
	Status           LostItemStatus `json:"status" db:"status"`
	ImagePath        *string        `json:"image_path,omitempty" db:"image_path"`
}

type ReportLostItemInput struct {
	ItemName         string  `json:"item_name" validate:"required"`
	ItemType         string  `json:"item_type" validate:"required"`
	ItemColor        *string `json:"item_color,omitempty"`
	Brand            *string `json:"brand,omitempty"`
	Description      string  `json:"description" validate:"required"`
	LastSeenLocation string  `json:"last_seen_location" validate:"required"`
	LastSeenDate     string  `json:"last_seen_date" validate:"required"` // YYYY-MM-DD
	ImagePath        *string `json:"image_path,omitempty"`
}

type LostItemStatus string

const (
	LostStatusReported  LostItemStatus = "Reported"
	LostStatusFound     LostItemStatus = "Found" // schema-compatibility value; the engine never sets it
	LostStatusMatched   LostItemStatus = "Matched"
	LostStatusClaimed   LostItemStatus = "Claimed"
	LostStatusUnclaimed LostItemStatus = "Unclaimed"
	LostStatusArchived  LostItemStatus = "Archived"
)

// Matched -> Reported is the rejection-recovery path: a rejected match
// returns the report to the open pool so a new match can be built.
var lostItemTransitions = map[LostItemStatus][]LostItemStatus{
	LostStatusReported:  {LostStatusMatched, LostStatusUnclaimed},
	LostStatusMatched:   {LostStatusClaimed, LostStatusReported},
	LostStatusClaimed:   {LostStatusArchived},
	LostStatusUnclaimed: {LostStatusArchived},
	LostStatusArchived:  {},
}

func (s LostItemStatus) IsValid() bool {
	switch s {
	case LostStatusReported, LostStatusFound, LostStatusMatched,
		LostStatusClaimed, LostStatusUnclaimed, LostStatusArchived:
		return true
	default:
		return false
	}
}

func (s LostItemStatus) CanTransitionTo(target LostItemStatus) bool {
	for _, t := range lostItemTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
