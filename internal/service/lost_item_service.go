package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/repository"
)

var ErrLostItemNotFound = errors.New("lost item report not found")

type LostItemService interface {
	Report(ctx context.Context, userID uuid.UUID, input domain.ReportLostItemInput) (*domain.LostItem, error)
	GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.LostItem, error)
	ListMine(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.LostItem], error)
	List(ctx context.Context, status *domain.LostItemStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.LostItem], error)
	MarkUnclaimed(ctx context.Context, userID uuid.UUID, caseNumber string) error
	Archive(ctx context.Context, userID uuid.UUID, caseNumber string, disposition domain.Disposition) (*domain.Archive, error)
}

type lostItemService struct {
	lostRepo    repository.LostItemRepository
	userRepo    repository.UserRepository
	archiveRepo repository.ArchiveRepository
	auditRepo   repository.AuditLogRepository
	notifSvc    NotificationService
	redis       *redis.Client
}

func NewLostItemService(
	lostRepo repository.LostItemRepository,
	userRepo repository.UserRepository,
	archiveRepo repository.ArchiveRepository,
	auditRepo repository.AuditLogRepository,
	notifSvc NotificationService,
	redis *redis.Client,
) LostItemService {
	return &lostItemService{
		lostRepo:    lostRepo,
		userRepo:    userRepo,
		archiveRepo: archiveRepo,
		auditRepo:   auditRepo,
		notifSvc:    notifSvc,
		redis:       redis,
	}
}

func (s *lostItemService) Report(ctx context.Context, userID uuid.UUID, input domain.ReportLostItemInput) (*domain.LostItem, error) {
	if err := validateReportInput(input); err != nil {
		return nil, err
	}

	lastSeen, err := time.Parse("2006-01-02", input.LastSeenDate)
	if err != nil {
		return nil, domain.NewValidationError("last_seen_date", "must be a YYYY-MM-DD date")
	}

	caseNumber, err := s.lostRepo.NextCaseNumber(ctx)
	if err != nil {
		return nil, err
	}

	item := &domain.LostItem{
		CaseNumber:       caseNumber,
		UserID:           userID,
		ItemName:         input.ItemName,
		ItemType:         input.ItemType,
		ItemColor:        input.ItemColor,
		Brand:            input.Brand,
		Description:      input.Description,
		LastSeenLocation: input.LastSeenLocation,
		LastSeenDate:     lastSeen,
		Status:           domain.LostStatusReported,
		ImagePath:        input.ImagePath,
	}

	if err := s.lostRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "REPORT_LOST_ITEM",
		EntityType: "LOST_ITEM",
		EntityID:   item.CaseNumber,
		NewValue:   item,
	})

	s.invalidateStats(ctx)

	// Confirmation is best-effort: the report stands even if the
	// notification cannot be recorded or delivered.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("report %s: reporter %s not resolvable, skipping confirmation", caseNumber, userID)
		return item, nil
	}
	if _, err := s.notifSvc.NotifyReportConfirmed(ctx, user, item); err != nil {
		log.Printf("report %s: failed to record confirmation notification: %v", caseNumber, err)
	}

	return item, nil
}

func (s *lostItemService) GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.LostItem, error) {
	item, err := s.lostRepo.GetByCaseNumber(ctx, caseNumber)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrLostItemNotFound
	}
	return item, nil
}

func (s *lostItemService) ListMine(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.LostItem], error) {
	items, total, err := s.lostRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.LostItem]{}, err
	}

	return domain.NewPaginatedResponse(items, params.Page, params.PageSize, total), nil
}

func (s *lostItemService) List(ctx context.Context, status *domain.LostItemStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.LostItem], error) {
	items, total, err := s.lostRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.LostItem]{}, err
	}

	return domain.NewPaginatedResponse(items, params.Page, params.PageSize, total), nil
}

// MarkUnclaimed moves an open report onto the timeout path. The engine
// never triggers this itself; it is an explicit staff action.
func (s *lostItemService) MarkUnclaimed(ctx context.Context, userID uuid.UUID, caseNumber string) error {
	item, err := s.lostRepo.GetByCaseNumber(ctx, caseNumber)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrLostItemNotFound
	}

	if err := s.lostRepo.TransitionStatus(ctx, caseNumber, domain.LostStatusReported, domain.LostStatusUnclaimed); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "MARK_UNCLAIMED",
		EntityType: "LOST_ITEM",
		EntityID:   caseNumber,
		OldValue:   domain.LostStatusReported,
		NewValue:   domain.LostStatusUnclaimed,
	})

	s.invalidateStats(ctx)
	return nil
}

func (s *lostItemService) Archive(ctx context.Context, userID uuid.UUID, caseNumber string, disposition domain.Disposition) (*domain.Archive, error) {
	if !disposition.IsValid() {
		return nil, domain.NewValidationError("disposition", "must be Donated, Disposed or Returned_to_Owner")
	}

	item, err := s.lostRepo.GetByCaseNumber(ctx, caseNumber)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrLostItemNotFound
	}

	archive := &domain.Archive{
		ID:          uuid.New(),
		CaseNumber:  caseNumber,
		Disposition: disposition,
	}
	if err := s.archiveRepo.CommitArchive(ctx, archive); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "ARCHIVE_LOST_ITEM",
		EntityType: "LOST_ITEM",
		EntityID:   caseNumber,
		OldValue:   item.Status,
		NewValue:   domain.LostStatusArchived,
	})

	s.invalidateStats(ctx)
	return archive, nil
}

func (s *lostItemService) invalidateStats(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, dashboardStatsKey).Err()
	}
}

func validateReportInput(input domain.ReportLostItemInput) error {
	if input.ItemName == "" {
		return domain.NewValidationError("item_name", "required")
	}
	if input.ItemType == "" {
		return domain.NewValidationError("item_type", "required")
	}
	if input.Description == "" {
		return domain.NewValidationError("description", "required")
	}
	if input.LastSeenLocation == "" {
		return domain.NewValidationError("last_seen_location", "required")
	}
	if input.LastSeenDate == "" {
		return domain.NewValidationError("last_seen_date", "required")
	}
	return nil
}
