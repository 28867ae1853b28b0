package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"
	"learning_iq/internal/domain/repository"
	"learning_iq/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardCacheKey = "leaderboard:top"
	leaderboardLimit    = 50
	downloadsLimit      = 20
)

type EngagementService struct {
	userRepo       repository.UserRepository
	engagementRepo repository.EngagementRepository
	cache          *redis.Client // nil disables caching
	cacheTTL       time.Duration
}

func NewEngagementService(
	userRepo repository.UserRepository,
	engagementRepo repository.EngagementRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) *EngagementService {
	return &EngagementService{
		userRepo:       userRepo,
		engagementRepo: engagementRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

// Leaderboard returns the top 50 users by xp, rank 1-based. Results are
// served read-through from Redis with a short TTL; cache trouble only logs.
func (s *EngagementService) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, leaderboardCacheKey).Bytes()
		if err == nil {
			var entries []model.LeaderboardEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("leaderboard cache read failed", "err", err)
		}
	}

	entries, err := s.userRepo.ListTopByXP(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, leaderboardCacheKey, encoded, s.cacheTTL).Err(); err != nil {
				logger.Warn("leaderboard cache write failed", "err", err)
			}
		}
	}
	return entries, nil
}

// Reminder returns the stored settings, or the defaults when none exist.
func (s *EngagementService) Reminder(ctx context.Context, userID int64) (*model.Reminder, error) {
	reminder, err := s.engagementRepo.GetReminder(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &model.Reminder{UserID: userID, NotifyBrowser: true, NotifyEmail: false}, nil
		}
		return nil, err
	}
	return reminder, nil
}

func (s *EngagementService) SaveReminder(ctx context.Context, reminder *model.Reminder) error {
	return s.engagementRepo.UpsertReminder(ctx, reminder)
}

func (s *EngagementService) Rate(ctx context.Context, userID int64, stars int) error {
	if stars < 1 || stars > 5 {
		return common.Errorf("Stars 1-5: %w", common.ErrValidation)
	}
	return s.engagementRepo.InsertRating(ctx, userID, stars)
}

func (s *EngagementService) Downloads(ctx context.Context, userID int64) ([]model.Download, error) {
	return s.engagementRepo.ListDownloads(ctx, userID, downloadsLimit)
}
