package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/musclematch/backend/internal/models"
	"github.com/musclematch/backend/internal/types"
)

// urlTTL bounds how long a presigned evidence URL stays usable.
const urlTTL = 15 * time.Minute

// ObjectStore is the blob-store collaborator. The core never moves bytes;
// it hands out presigned URLs and records storage keys.
type ObjectStore interface {
	GenerateUploadURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// MediaService manages uploaded photo references: presigned upload slots,
// recording completed uploads, and resolving short-lived access URLs.
type MediaService struct {
	db    *gorm.DB
	store ObjectStore
}

var _ IMediaService = (*MediaService)(nil)

// NewMediaService creates a new MediaService instance
func NewMediaService(db *gorm.DB, store ObjectStore) *MediaService {
	return &MediaService{db: db, store: store}
}

// GenerateUploadURL returns a presigned PUT slot under a fresh storage key.
func (s *MediaService) GenerateUploadURL(ctx context.Context, userID uuid.UUID, req *types.UploadURLRequest) (*types.UploadURLResponse, error) {
	if _, err := s.profileOf(ctx, userID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s%s", req.Category, uuid.New().String(), path.Ext(req.Filename))
	uploadURL, err := s.store.GenerateUploadURL(ctx, key, urlTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &types.UploadURLResponse{UploadURL: uploadURL, StorageKey: key}, nil
}

// SavePhoto records a completed upload against the caller's profile. The
// first profile photo becomes primary.
func (s *MediaService) SavePhoto(ctx context.Context, userID uuid.UUID, req *types.SavePhotoRequest) (*types.PhotoResponse, error) {
	profile, err := s.profileOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	photo := models.EvidencePhoto{
		ProfileID:  profile.ID,
		Category:   req.Category,
		StorageKey: req.StorageKey,
	}
	if req.Category == models.PhotoProfile {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.EvidencePhoto{}).
			Where("profile_id = ? AND category = ?", profile.ID, models.PhotoProfile).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count profile photos: %w", err)
		}
		photo.IsPrimary = count == 0
	}

	if err := s.db.WithContext(ctx).Create(&photo).Error; err != nil {
		return nil, fmt.Errorf("failed to save photo reference: %w", err)
	}

	url, err := s.store.GeneratePresignedURL(ctx, photo.StorageKey, urlTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign photo: %w", err)
	}

	return &types.PhotoResponse{
		ID:        photo.ID,
		Category:  photo.Category,
		URL:       url,
		IsPrimary: photo.IsPrimary,
	}, nil
}

// ResolveURL returns a short-lived access URL for a stored photo. Owners can
// resolve their own photos; admins can resolve anyone's, which is how the
// moderation queue views evidence.
func (s *MediaService) ResolveURL(ctx context.Context, userID, photoID uuid.UUID) (string, error) {
	caller, err := s.profileOf(ctx, userID)
	if err != nil {
		return "", err
	}

	var photo models.EvidencePhoto
	if err := s.db.WithContext(ctx).First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPhotoNotFound
		}
		return "", fmt.Errorf("failed to load photo: %w", err)
	}

	if photo.ProfileID != caller.ID && caller.Role != models.RoleAdmin {
		return "", ErrPermissionDenied
	}

	url, err := s.store.GeneratePresignedURL(ctx, photo.StorageKey, urlTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign photo: %w", err)
	}
	return url, nil
}

// DeletePhoto removes a stored photo reference. Owners delete their own;
// admins can delete anyone's (rejected evidence cleanup). Only the reference
// row goes away here; the object itself is reaped by the storage lifecycle.
func (s *MediaService) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	caller, err := s.profileOf(ctx, userID)
	if err != nil {
		return err
	}

	var photo models.EvidencePhoto
	if err := s.db.WithContext(ctx).First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to load photo: %w", err)
	}

	if photo.ProfileID != caller.ID && caller.Role != models.RoleAdmin {
		return ErrPermissionDenied
	}

	if err := s.db.WithContext(ctx).Delete(&photo).Error; err != nil {
		return fmt.Errorf("failed to delete photo reference: %w", err)
	}
	return nil
}

func (s *MediaService) profileOf(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}
