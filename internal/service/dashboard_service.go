package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/repository"
)

// dashboardStatsKey is shared by the services that mutate item or match
// state so the cached stats never outlive a lifecycle change.
const dashboardStatsKey = "lostfound:dashboard:stats"

type Stats struct {
	OpenReports      int64 `json:"open_reports"`
	MatchedReports   int64 `json:"matched_reports"`
	ClaimedReports   int64 `json:"claimed_reports"`
	UnclaimedReports int64 `json:"unclaimed_reports"`
	ArchivedReports  int64 `json:"archived_reports"`
	ItemsInCustody   int64 `json:"items_in_custody"`
	PendingMatches   int64 `json:"pending_matches"`
	ConfirmedMatches int64 `json:"confirmed_matches"`
	RejectedMatches  int64 `json:"rejected_matches"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type dashboardService struct {
	lostRepo  repository.LostItemRepository
	foundRepo repository.FoundItemRepository
	matchRepo repository.MatchRepository
	redis     *redis.Client
}

func NewDashboardService(lostRepo repository.LostItemRepository, foundRepo repository.FoundItemRepository, matchRepo repository.MatchRepository, redis *redis.Client) DashboardService {
	return &dashboardService{
		lostRepo:  lostRepo,
		foundRepo: foundRepo,
		matchRepo: matchRepo,
		redis:     redis,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*Stats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, dashboardStatsKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	lostCounts, err := s.lostRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	foundCounts, err := s.foundRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	matchCounts, err := s.matchRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		OpenReports:      lostCounts[domain.LostStatusReported],
		MatchedReports:   lostCounts[domain.LostStatusMatched],
		ClaimedReports:   lostCounts[domain.LostStatusClaimed],
		UnclaimedReports: lostCounts[domain.LostStatusUnclaimed],
		ArchivedReports:  lostCounts[domain.LostStatusArchived],
		ItemsInCustody:   foundCounts[domain.FoundStatusFound] + foundCounts[domain.FoundStatusMatched],
		PendingMatches:   matchCounts[domain.MatchStatusPending],
		ConfirmedMatches: matchCounts[domain.MatchStatusConfirmed],
		RejectedMatches:  matchCounts[domain.MatchStatusRejected],
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, dashboardStatsKey, statsJSON, time.Minute).Err()
		}
	}

	return stats, nil
}
