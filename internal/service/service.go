package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"campus-lostfound/internal/config"
	"campus-lostfound/internal/repository"
)

type Services struct {
	Auth         AuthService
	Office       OfficeService
	LostItem     LostItemService
	FoundItem    FoundItemService
	Match        MatchService
	Notification NotificationService
	Email        EmailService
	Media        MediaService
	Dashboard    DashboardService
	Audit        AuditService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	notificationService := NewNotificationService(repos.Notification, emailService, cfg.NotifySendTimeout)

	authService := NewAuthService(repos.User, repos.Session, cfg)
	officeService := NewOfficeService(repos.Office)
	lostItemService := NewLostItemService(repos.LostItem, repos.User, repos.Archive, repos.AuditLog, notificationService, redis)
	foundItemService := NewFoundItemService(repos.FoundItem, repos.LostItem, repos.Match, repos.Office, repos.User, repos.AuditLog, notificationService, redis)
	matchService := NewMatchService(repos.Match, repos.LostItem, repos.FoundItem, repos.User, repos.AuditLog, notificationService, redis)
	mediaService := NewMediaService(minioClient, cfg)
	dashboardService := NewDashboardService(repos.LostItem, repos.FoundItem, repos.Match, redis)
	auditService := NewAuditService(repos.AuditLog)

	return &Services{
		Auth:         authService,
		Office:       officeService,
		LostItem:     lostItemService,
		FoundItem:    foundItemService,
		Match:        matchService,
		Notification: notificationService,
		Email:        emailService,
		Media:        mediaService,
		Dashboard:    dashboardService,
		Audit:        auditService,
	}
}
