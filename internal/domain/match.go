package domain

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID           uuid.UUID   `json:"match_id" db:"match_id"`
	FoundItemID  string      `json:"found_item_id" db:"found_item_id"`
	CaseNumber   string      `json:"case_number" db:"case_number"`
	Confirmation bool        `json:"confirmation" db:"confirmation"`
	Status       MatchStatus `json:"match_status" db:"match_status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}

// MatchCandidate is a proposed pairing between a found item and an open
// lost-item report, produced by the matcher and not yet committed.
type MatchCandidate struct {
	FoundItemID string
	Report      LostItem
}

// MatchCommitResult reports the outcome of committing one batch of
// candidates: matches that were persisted, and case numbers that lost
// the eligibility race and were dropped.
type MatchCommitResult struct {
	Committed []Match
	Dropped   []string
}

type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "Pending"
	MatchStatusConfirmed MatchStatus = "Confirmed"
	MatchStatusRejected  MatchStatus = "Rejected"
)

var matchTransitions = map[MatchStatus][]MatchStatus{
	MatchStatusPending:   {MatchStatusConfirmed, MatchStatusRejected},
	MatchStatusConfirmed: {},
	MatchStatusRejected:  {},
}

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusConfirmed, MatchStatusRejected:
		return true
	default:
		return false
	}
}

func (s MatchStatus) CanTransitionTo(target MatchStatus) bool {
	for _, t := range matchTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
