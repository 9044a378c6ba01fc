package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Office       OfficeRepository
	LostItem     LostItemRepository
	FoundItem    FoundItemRepository
	Match        MatchRepository
	Notification NotificationRepository
	Archive      ArchiveRepository
	AuditLog     AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Office:       NewOfficeRepository(db),
		LostItem:     NewLostItemRepository(db),
		FoundItem:    NewFoundItemRepository(db),
		Match:        NewMatchRepository(db),
		Notification: NewNotificationRepository(db),
		Archive:      NewArchiveRepository(db),
		AuditLog:     NewAuditLogRepository(db),
	}
}
