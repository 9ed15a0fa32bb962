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

// ProfileService owns the membership record lifecycle: bootstrap on first
// authenticated access and owner edits.
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves the profile owned by the given user.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// GetProfileByID retrieves a profile by record id, for admin paths.
func (s *ProfileService) GetProfileByID(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// EnsureProfile returns the user's profile, creating the initial record on
// first access. Safe to call repeatedly: the unique index on user_id keeps
// the record single and a lost insert race falls back to the winner's row.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	now := time.Now()
	created := &models.Profile{
		UserID:     userID,
		Status:     models.StatusActive,
		Role:       models.RoleUser,
		VerificationStatus: models.VerificationStatus{
			Identity: models.VerificationNotSubmitted,
			Muscle:   models.VerificationNotSubmitted,
		},
		Subscription: models.Subscription{Level: models.SubscriptionFree},
		DailyLikes:   models.NewQuotaWindow(now, likeWindow),
		CreatedAt:    now,
		LastActive:   now,
	}
	if err := s.db.WithContext(ctx).Create(created).Error; err != nil {
		// Concurrent bootstrap: the other caller's row wins.
		if existing, lookupErr := s.GetProfile(ctx, userID); lookupErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return created, nil
}

// UpdateProfile applies owner edits. Only fields present in the request are
// touched; gender may only be set to a selectable value.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil {
		profile.Nickname = *req.Nickname
	}
	if req.Gender != nil {
		if !req.Gender.Valid() {
			return nil, fmt.Errorf("invalid gender %q", *req.Gender)
		}
		profile.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		profile.BirthDate = *req.BirthDate
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	profile.LastActive = time.Now()

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
