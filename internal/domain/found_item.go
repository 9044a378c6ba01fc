package domain

import "time"

type FoundItem struct {
	ID            string          `json:"found_item_id" db:"found_item_id"`
	OfficeID      string          `json:"office_id" db:"office_id"`
	ItemName      string          `json:"item_name" db:"item_name"`
	ItemColor     string          `json:"item_color" db:"item_color"`
	Description   string          `json:"description" db:"description"`
	FoundDate     time.Time       `json:"found_date" db:"found_date"`
	FoundLocation string          `json:"found_location" db:"found_location"`
	Status        FoundItemStatus `json:"status" db:"status"`
	ImagePath     *string         `json:"image_path,omitempty" db:"image_path"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

type LogFoundItemInput struct {
	OfficeID      string  `json:"office_id" validate:"required"`
	ItemName      string  `json:"item_name" validate:"required"`
	ItemColor     string  `json:"item_color" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	FoundDate     string  `json:"found_date" validate:"required"` // YYYY-MM-DD
	FoundLocation string  `json:"found_location" validate:"required"`
	ImagePath     *string `json:"image_path,omitempty"`
}

// FoundItemLogResult is the event payload handed back to collaborators
// (the HTTP layer) after a found item has been logged and matched.
type FoundItemLogResult struct {
	FoundItem          FoundItem      `json:"found_item"`
	Matches            []Match        `json:"matches"`
	DroppedCaseNumbers []string       `json:"dropped_case_numbers,omitempty"`
	Notifications      []Notification `json:"notifications,omitempty"`
}

type FoundItemStatus string

const (
	FoundStatusFound    FoundItemStatus = "Found"
	FoundStatusMatched  FoundItemStatus = "Matched"
	FoundStatusClaimed  FoundItemStatus = "Claimed"
	FoundStatusArchived FoundItemStatus = "Archived"
)

// Matched -> Found covers the rejection-recovery path when a found item
// loses its last non-rejected match.
var foundItemTransitions = map[FoundItemStatus][]FoundItemStatus{
	FoundStatusFound:    {FoundStatusMatched, FoundStatusArchived},
	FoundStatusMatched:  {FoundStatusClaimed, FoundStatusFound},
	FoundStatusClaimed:  {FoundStatusArchived},
	FoundStatusArchived: {},
}

func (s FoundItemStatus) IsValid() bool {
	switch s {
	case FoundStatusFound, FoundStatusMatched, FoundStatusClaimed, FoundStatusArchived:
		return true
	default:
		return false
	}
}

func (s FoundItemStatus) CanTransitionTo(target FoundItemStatus) bool {
	for _, t := range foundItemTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
