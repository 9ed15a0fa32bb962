package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/musclematch/backend/internal/models"
)

// ModerationService is the admin-facing half of the review state machine:
// the pending queue, decisions, and role assignment. Every operation re-reads
// the caller's profile and checks the admin role before doing anything; the
// check is never cached because a role can change between requests.
type ModerationService struct {
	db *gorm.DB
}

var _ IModerationService = (*ModerationService)(nil)

// NewModerationService creates a new ModerationService instance
func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

// requireAdmin resolves the caller's profile and confirms the admin role.
func (s *ModerationService) requireAdmin(ctx context.Context, adminUserID uuid.UUID) (*models.Profile, error) {
	var caller models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", adminUserID).First(&caller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load caller profile: %w", err)
	}
	if caller.Role != models.RoleAdmin {
		return nil, ErrPermissionDenied
	}
	return &caller, nil
}

// ListPending returns every profile with a category awaiting a decision.
// Muscle-pending rows are returned regardless of gender: they should not
// exist for non-male profiles, but hiding bad data from admins helps nobody.
func (s *ModerationService) ListPending(ctx context.Context, adminUserID uuid.UUID) ([]models.Profile, error) {
	if _, err := s.requireAdmin(ctx, adminUserID); err != nil {
		return nil, err
	}

	var pending []models.Profile
	if err := s.db.WithContext(ctx).
		Where("verification_identity = ? OR verification_muscle = ?",
			models.VerificationPending, models.VerificationPending).
		Find(&pending).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending verifications: %w", err)
	}
	return pending, nil
}

// RecordDecision overwrites the target category with the admin's decision and
// returns the full updated status. Any valid state is accepted so an admin
// can also revoke (approved -> rejected) or reopen a review.
func (s *ModerationService) RecordDecision(ctx context.Context, adminUserID, profileID uuid.UUID, category models.EvidenceCategory, decision models.VerificationState) (*models.VerificationStatus, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("invalid evidence category %q", category)
	}
	if !decision.Valid() {
		return nil, fmt.Errorf("invalid verification state %q", decision)
	}

	admin, err := s.requireAdmin(ctx, adminUserID)
	if err != nil {
		return nil, err
	}

	var target models.Profile
	if err := s.db.WithContext(ctx).First(&target, "id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load target profile: %w", err)
	}

	target.VerificationStatus.Set(category, decision)
	if err := s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", target.ID).
		Update(statusColumn(category), decision).Error; err != nil {
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}

	log.Printf("[Moderation] admin %s set %s/%s = %s", admin.ID, target.ID, category, decision)
	return &target.VerificationStatus, nil
}

// SetRole assigns the target profile's role. Admins may demote themselves;
// handing over the last admin seat is an operational concern, not ours.
func (s *ModerationService) SetRole(ctx context.Context, adminUserID, profileID uuid.UUID, role models.Role) (models.Role, error) {
	if !role.Valid() {
		return "", fmt.Errorf("invalid role %q", role)
	}

	admin, err := s.requireAdmin(ctx, adminUserID)
	if err != nil {
		return "", err
	}

	res := s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", profileID).Update("role", role)
	if res.Error != nil {
		return "", fmt.Errorf("failed to set role: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return "", ErrProfileNotFound
	}

	log.Printf("[Moderation] admin %s set role of %s to %s", admin.ID, profileID, role)
	return role, nil
}
