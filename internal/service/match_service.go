package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/repository"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchNotConfirmed = errors.New("match has not been confirmed")
)

// MatchService resolves pending matches. Confirm and Reject settle a single
// match and repair the linked report and found item; Claim hands the item
// over once a match has been confirmed.
type MatchService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	List(ctx context.Context, status *domain.MatchStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Match], error)
	ListByFoundItem(ctx context.Context, foundItemID string) ([]domain.Match, error)
	Confirm(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Match, error)
	Reject(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Match, error)
	Claim(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Match, error)
	Remind(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Notification, error)
}

type matchService struct {
	matchRepo repository.MatchRepository
	lostRepo  repository.LostItemRepository
	foundRepo repository.FoundItemRepository
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
	notifSvc  NotificationService
	redis     *redis.Client
}

func NewMatchService(
	matchRepo repository.MatchRepository,
	lostRepo repository.LostItemRepository,
	foundRepo repository.FoundItemRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
	notifSvc NotificationService,
	redis *redis.Client,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		lostRepo:  lostRepo,
		foundRepo: foundRepo,
		userRepo:  userRepo,
		auditRepo: auditRepo,
		notifSvc:  notifSvc,
		redis:     redis,
	}
}

func (s *matchService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

func (s *matchService) List(ctx context.Context, status *domain.MatchStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Match], error) {
	matches, total, err := s.matchRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Match]{}, err
	}

	return domain.NewPaginatedResponse(matches, params.Page, params.PageSize, total), nil
}

func (s *matchService) ListByFoundItem(ctx context.Context, foundItemID string) ([]domain.Match, error) {
	return s.matchRepo.ListByFoundItem(ctx, foundItemID)
}

func (s *matchService) Confirm(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if !match.Status.CanTransitionTo(domain.MatchStatusConfirmed) {
		return nil, domain.ErrInvalidTransition
	}

	rejectedCases, err := s.matchRepo.CommitConfirm(ctx, match)
	if err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "CONFIRM_MATCH",
		EntityType: "MATCH",
		EntityID:   id.String(),
		OldValue:   domain.MatchStatusPending,
		NewValue:   domain.MatchStatusConfirmed,
	})
	if len(rejectedCases) > 0 {
		log.Printf("match %s confirmed, reopened sibling cases: %v", id, rejectedCases)
	}

	s.invalidateStats(ctx)
	return match, nil
}

func (s *matchService) Reject(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if !match.Status.CanTransitionTo(domain.MatchStatusRejected) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.matchRepo.CommitReject(ctx, match); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "REJECT_MATCH",
		EntityType: "MATCH",
		EntityID:   id.String(),
		OldValue:   domain.MatchStatusPending,
		NewValue:   domain.MatchStatusRejected,
	})

	s.invalidateStats(ctx)
	return match, nil
}

func (s *matchService) Claim(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if match.Status != domain.MatchStatusConfirmed {
		return nil, ErrMatchNotConfirmed
	}

	if err := s.matchRepo.CommitClaim(ctx, match); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "CLAIM_ITEM",
		EntityType: "MATCH",
		EntityID:   id.String(),
		NewValue:   domain.LostStatusClaimed,
	})

	s.invalidateStats(ctx)
	return match, nil
}

// Remind re-sends the pickup nudge for a match that is still live. The
// notification outcome is recorded on the notification itself; only a
// failure to produce the record surfaces here.
func (s *matchService) Remind(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Notification, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if match.Status == domain.MatchStatusRejected {
		return nil, domain.ErrInvalidTransition
	}

	report, err := s.lostRepo.GetByCaseNumber(ctx, match.CaseNumber)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrLostItemNotFound
	}

	found, err := s.foundRepo.GetByID(ctx, match.FoundItemID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrFoundItemNotFound
	}

	user, err := s.userRepo.GetByID(ctx, report.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	notif, err := s.notifSvc.NotifyClaimReminder(ctx, user, report, found)
	if err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		UserID:     userID,
		Action:     "SEND_CLAIM_REMINDER",
		EntityType: "MATCH",
		EntityID:   id.String(),
		NewValue:   notif.ID,
	})

	return notif, nil
}

func (s *matchService) invalidateStats(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, dashboardStatsKey).Err()
	}
}
