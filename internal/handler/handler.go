package handler

import "campus-lostfound/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	Office       *OfficeHandler
	LostItem     *LostItemHandler
	FoundItem    *FoundItemHandler
	Match        *MatchHandler
	Notification *NotificationHandler
	Media        *MediaHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Office:       NewOfficeHandler(services.Office),
		LostItem:     NewLostItemHandler(services.LostItem),
		FoundItem:    NewFoundItemHandler(services.FoundItem, services.Match),
		Match:        NewMatchHandler(services.Match),
		Notification: NewNotificationHandler(services.Notification),
		Media:        NewMediaHandler(services.Media),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Audit:        NewAuditHandler(services.Audit),
	}
}
