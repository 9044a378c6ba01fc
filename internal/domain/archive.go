package domain

import (
	"time"

	"github.com/google/uuid"
)

type Archive struct {
	ID          uuid.UUID   `json:"archive_id" db:"archive_id"`
	CaseNumber  string      `json:"case_number" db:"case_number"`
	ArchiveDate time.Time   `json:"archive_date" db:"archive_date"`
	Disposition Disposition `json:"disposition" db:"disposition"`
}

type Disposition string

const (
	DispositionDonated         Disposition = "Donated"
	DispositionDisposed        Disposition = "Disposed"
	DispositionReturnedToOwner Disposition = "Returned_to_Owner"
)

func (d Disposition) IsValid() bool {
	switch d {
	case DispositionDonated, DispositionDisposed, DispositionReturnedToOwner:
		return true
	default:
		return false
	}
}
