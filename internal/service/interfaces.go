package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/musclematch/backend/internal/models"
	"github.com/musclematch/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GenerateToken(userID uuid.UUID, nickname string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for membership record operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	GetProfileByID(ctx context.Context, profileID uuid.UUID) (*models.Profile, error)
	EnsureProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error)
}

// IVerificationService defines the user-facing verification operations
type IVerificationService interface {
	SubmitEvidence(ctx context.Context, userID uuid.UUID, category models.EvidenceCategory, storageKey string) (*models.VerificationStatus, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*types.VerificationStatusResponse, error)
}

// IModerationService defines the admin-facing verification operations
type IModerationService interface {
	ListPending(ctx context.Context, adminUserID uuid.UUID) ([]models.Profile, error)
	RecordDecision(ctx context.Context, adminUserID, profileID uuid.UUID, category models.EvidenceCategory, decision models.VerificationState) (*models.VerificationStatus, error)
	SetRole(ctx context.Context, adminUserID, profileID uuid.UUID, role models.Role) (models.Role, error)
}

// ILikeService defines the daily like budget operations
type ILikeService interface {
	SpendLike(ctx context.Context, userID uuid.UUID) (*types.LikeBudget, error)
	Budget(ctx context.Context, userID uuid.UUID) (*types.LikeBudget, error)
}

// IMediaService defines the uploaded photo reference operations
type IMediaService interface {
	GenerateUploadURL(ctx context.Context, userID uuid.UUID, req *types.UploadURLRequest) (*types.UploadURLResponse, error)
	SavePhoto(ctx context.Context, userID uuid.UUID, req *types.SavePhotoRequest) (*types.PhotoResponse, error)
	ResolveURL(ctx context.Context, userID, photoID uuid.UUID) (string, error)
	DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error
}
