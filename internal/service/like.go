package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/musclematch/backend/internal/models"
	"github.com/musclematch/backend/internal/types"
)

// likeWindow is the rolling window of the daily like budget.
const likeWindow = 24 * time.Hour

// Daily like ceilings per subscription tier.
const (
	FreeDailyLikes    = 10
	PremiumDailyLikes = 50
)

// LikeService spends from the per-profile daily like budget, built on the
// rolling quota counter stored on the profile. The reset is lazy: it happens
// inside the same transaction as the spend, never on a timer.
type LikeService struct {
	db *gorm.DB
}

var _ ILikeService = (*LikeService)(nil)

// NewLikeService creates a new LikeService instance
func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// dailyLimit returns the ceiling that applies to the profile's tier.
func dailyLimit(p *models.Profile) int {
	if p.Subscription.Level == models.SubscriptionPremium {
		return PremiumDailyLikes
	}
	return FreeDailyLikes
}

// SpendLike consumes one like from the caller's budget and returns the
// updated budget. Returns ErrDailyLikeLimit when the window is exhausted,
// leaving the stored counter unchanged apart from the lazy reset.
func (s *LikeService) SpendLike(ctx context.Context, userID uuid.UUID) (*types.LikeBudget, error) {
	var budget types.LikeBudget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("failed to load profile: %w", err)
		}

		now := time.Now()
		limit := dailyLimit(&profile)
		if profile.DailyLikes.Remaining(limit, now) == 0 {
			return ErrDailyLikeLimit
		}

		used := profile.DailyLikes.Consume(now, likeWindow)
		if err := tx.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
			"daily_likes_count":    profile.DailyLikes.Count,
			"daily_likes_reset_at": profile.DailyLikes.ResetAt,
			"last_active":          now,
		}).Error; err != nil {
			return fmt.Errorf("failed to update like budget: %w", err)
		}

		budget = types.LikeBudget{
			Used:      used,
			Limit:     limit,
			Remaining: profile.DailyLikes.Remaining(limit, now),
			ResetAt:   profile.DailyLikes.ResetAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// Budget reports the current budget without spending from it.
func (s *LikeService) Budget(ctx context.Context, userID uuid.UUID) (*types.LikeBudget, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	now := time.Now()
	limit := dailyLimit(&profile)
	resetAt := profile.DailyLikes.ResetAt
	if !now.Before(resetAt) {
		resetAt = now.Add(likeWindow)
	}
	return &types.LikeBudget{
		Used:      profile.DailyLikes.Used(now),
		Limit:     limit,
		Remaining: profile.DailyLikes.Remaining(limit, now),
		ResetAt:   resetAt,
	}, nil
}
