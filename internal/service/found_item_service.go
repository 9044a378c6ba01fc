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

var ErrFoundItemNotFound = errors.New("found item not found")

// FoundItemService drives the found-item side of the lifecycle: logging a
// new item runs the matcher over the open reports and commits the item plus
// all match transitions as one unit, then dispatches notifications to the
// reporters of the matched cases.
type FoundItemService interface {
	Log(ctx context.Context, userID uuid.UUID, input domain.LogFoundItemInput) (*domain.FoundItemLogResult, error)
	GetByID(ctx context.Context, id string) (*domain.FoundItem, error)
	List(ctx context.Context, status *domain.FoundItemStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.FoundItem], error)
	Archive(ctx context.Context, userID uuid.UUID, id string) error
}

type foundItemService struct {
	foundRepo  repository.FoundItemRepository
	lostRepo   repository.LostItemRepository
	matchRepo  repository.MatchRepository
	officeRepo repository.OfficeRepository
	userRepo   repository.UserRepository
	auditRepo  repository.AuditLogRepository
	notifSvc   NotificationService
	redis      *redis.Client
}

func NewFoundItemService(
	foundRepo repository.FoundItemRepository,
	lostRepo repository.LostItemRepository,
	matchRepo repository.MatchRepository,
	officeRepo repository.OfficeRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
	notifSvc NotificationService,
	redis *redis.Client,
) FoundItemService {
	return &foundItemService{
		foundRepo:  foundRepo,
		lostRepo:   lostRepo,
		matchRepo:  matchRepo,
		officeRepo: officeRepo,
		userRepo:   userRepo,
		auditRepo:  auditRepo,
		notifSvc:   notifSvc,
		redis:      redis,
	}
}

func (s *foundItemService) Log(ctx context.Context, userID uuid.UUID, input domain.LogFoundItemInput) (*domain.FoundItemLogResult, error) {
	if err := validateLogFoundItemInput(input); err != nil {
		return nil, err
	}

	foundDate, err := time.Parse("2006-01-02", input.FoundDate)
	if err != nil {
		return nil, domain.NewValidationError("found_date", "must be a YYYY-MM-DD date")
	}

	office, err := s.officeRepo.GetByID(ctx, input.OfficeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, domain.NewValidationError("office_id", "unknown office")
	}

	id, err := s.foundRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	item := &domain.FoundItem{
		ID:            id,
		OfficeID:      input.OfficeID,
		ItemName:      input.ItemName,
		ItemColor:     input.ItemColor,
		Description:   input.Description,
		FoundDate:     foundDate,
		FoundLocation: input.FoundLocation,
		Status:        domain.FoundStatusFound,
		ImagePath:     input.ImagePath,
	}

	openReports, err := s.lostRepo.ListOpenReports(ctx)
	if err != nil {
		return nil, err
	}

	candidates := FindCandidates(*item, openReports)

	// One transaction for the item and every candidate transition: a
	// write failure rolls everything back, a lost eligibility race only
	// drops that candidate.
	commit, err := s.matchRepo.CommitFoundItemLog(ctx, item, candidates)
	if err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "LOG_FOUND_ITEM",
		EntityType: "FOUND_ITEM",
		EntityID:   item.ID,
		NewValue:   item,
	})

	s.invalidateStats(ctx)

	result := &domain.FoundItemLogResult{
		FoundItem:          *item,
		Matches:            commit.Committed,
		DroppedCaseNumbers: commit.Dropped,
	}

	reportByCase := make(map[string]domain.LostItem, len(openReports))
	for _, report := range openReports {
		reportByCase[report.CaseNumber] = report
	}

	for _, match := range commit.Committed {
		report, ok := reportByCase[match.CaseNumber]
		if !ok {
			continue
		}
		report.Status = domain.LostStatusMatched

		user, err := s.userRepo.GetByID(ctx, report.UserID)
		if err != nil || user == nil {
			log.Printf("match %s: reporter %s not resolvable, skipping notification", match.ID, report.UserID)
			continue
		}

		notif, err := s.notifSvc.NotifyMatchFound(ctx, user, &report, item)
		if err != nil {
			log.Printf("match %s: failed to record notification: %v", match.ID, err)
			continue
		}
		result.Notifications = append(result.Notifications, *notif)
	}

	return result, nil
}

func (s *foundItemService) GetByID(ctx context.Context, id string) (*domain.FoundItem, error) {
	item, err := s.foundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrFoundItemNotFound
	}
	return item, nil
}

func (s *foundItemService) List(ctx context.Context, status *domain.FoundItemStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.FoundItem], error) {
	items, total, err := s.foundRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.FoundItem]{}, err
	}

	return domain.NewPaginatedResponse(items, params.Page, params.PageSize, total), nil
}

func (s *foundItemService) Archive(ctx context.Context, userID uuid.UUID, id string) error {
	item, err := s.foundRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrFoundItemNotFound
	}

	if !item.Status.CanTransitionTo(domain.FoundStatusArchived) {
		return domain.ErrInvalidTransition
	}

	if err := s.foundRepo.TransitionStatus(ctx, id, item.Status, domain.FoundStatusArchived); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "ARCHIVE_FOUND_ITEM",
		EntityType: "FOUND_ITEM",
		EntityID:   id,
		OldValue:   item.Status,
		NewValue:   domain.FoundStatusArchived,
	})

	s.invalidateStats(ctx)
	return nil
}

func (s *foundItemService) invalidateStats(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, dashboardStatsKey).Err()
	}
}

func validateLogFoundItemInput(input domain.LogFoundItemInput) error {
	if input.OfficeID == "" {
		return domain.NewValidationError("office_id", "required")
	}
	if input.ItemName == "" {
		return domain.NewValidationError("item_name", "required")
	}
	if input.ItemColor == "" {
		return domain.NewValidationError("item_color", "required")
	}
	if input.Description == "" {
		return domain.NewValidationError("description", "required")
	}
	if input.FoundLocation == "" {
		return domain.NewValidationError("found_location", "required")
	}
	if input.FoundDate == "" {
		return domain.NewValidationError("found_date", "required")
	}
	return nil
}
