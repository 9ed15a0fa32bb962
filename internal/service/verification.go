package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/musclematch/backend/internal/models"
	"github.com/musclematch/backend/internal/types"
)

// VerificationService is the user-facing half of the review state machine.
// Legal user transitions per category:
//
//	not_submitted -> pending
//	rejected      -> pending   (resubmission)
//	pending       -> pending   (idempotent re-submit)
//
// approved is terminal on this path; only an admin decision can move an
// approved category.
type VerificationService struct {
	db *gorm.DB
}

var _ IVerificationService = (*VerificationService)(nil)

// NewVerificationService creates a new VerificationService instance
func NewVerificationService(db *gorm.DB) *VerificationService {
	return &VerificationService{db: db}
}

// SubmitEvidence records an uploaded evidence reference and moves the
// category to pending. The upload itself has already happened against the
// object store; only the storage key is persisted here.
func (s *VerificationService) SubmitEvidence(ctx context.Context, userID uuid.UUID, category models.EvidenceCategory, storageKey string) (*models.VerificationStatus, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("invalid evidence category %q", category)
	}

	var status models.VerificationStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("failed to load profile: %w", err)
		}

		// The muscle check only exists for male profiles.
		if category == models.CategoryMuscle && profile.Gender != models.GenderMale {
			return ErrInvalidTransition
		}
		if profile.VerificationStatus.Get(category) == models.VerificationApproved {
			return ErrInvalidTransition
		}

		profile.VerificationStatus.Set(category, models.VerificationPending)
		if err := tx.Model(&models.Profile{}).Where("id = ?", profile.ID).
			Update(statusColumn(category), models.VerificationPending).Error; err != nil {
			return fmt.Errorf("failed to update verification status: %w", err)
		}

		photo := models.EvidencePhoto{
			ProfileID:  profile.ID,
			Category:   models.PhotoCategory(category),
			StorageKey: storageKey,
		}
		if err := tx.Create(&photo).Error; err != nil {
			return fmt.Errorf("failed to record evidence reference: %w", err)
		}

		status = profile.VerificationStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetStatus returns the caller's review state together with the permission
// level it currently yields.
func (s *VerificationService) GetStatus(ctx context.Context, userID uuid.UUID) (*types.VerificationStatusResponse, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &types.VerificationStatusResponse{
		Identity:        profile.VerificationStatus.Identity,
		Muscle:          profile.VerificationStatus.Muscle,
		Gender:          profile.Gender,
		PermissionLevel: PermissionLevel(&profile),
	}, nil
}

// statusColumn maps an evidence category to its profile column.
func statusColumn(category models.EvidenceCategory) string {
	if category == models.CategoryMuscle {
		return "verification_muscle"
	}
	return "verification_identity"
}
