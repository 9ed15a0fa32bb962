package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/musclematch/backend/internal/models"
	"github.com/musclematch/backend/internal/types"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) GenerateToken(userID uuid.UUID, nickname string) (string, error) {
	args := m.Called(userID, nickname)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockProfileService is a mock implementation of service.IProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) GetProfileByID(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) EnsureProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

// MockVerificationService is a mock implementation of service.IVerificationService
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) SubmitEvidence(ctx context.Context, userID uuid.UUID, category models.EvidenceCategory, storageKey string) (*models.VerificationStatus, error) {
	args := m.Called(ctx, userID, category, storageKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationStatus), args.Error(1)
}

func (m *MockVerificationService) GetStatus(ctx context.Context, userID uuid.UUID) (*types.VerificationStatusResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.VerificationStatusResponse), args.Error(1)
}

// MockModerationService is a mock implementation of service.IModerationService
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ListPending(ctx context.Context, adminUserID uuid.UUID) ([]models.Profile, error) {
	args := m.Called(ctx, adminUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockModerationService) RecordDecision(ctx context.Context, adminUserID, profileID uuid.UUID, category models.EvidenceCategory, decision models.VerificationState) (*models.VerificationStatus, error) {
	args := m.Called(ctx, adminUserID, profileID, category, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationStatus), args.Error(1)
}

func (m *MockModerationService) SetRole(ctx context.Context, adminUserID, profileID uuid.UUID, role models.Role) (models.Role, error) {
	args := m.Called(ctx, adminUserID, profileID, role)
	return args.Get(0).(models.Role), args.Error(1)
}

// MockLikeService is a mock implementation of service.ILikeService
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) SpendLike(ctx context.Context, userID uuid.UUID) (*types.LikeBudget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LikeBudget), args.Error(1)
}

func (m *MockLikeService) Budget(ctx context.Context, userID uuid.UUID) (*types.LikeBudget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LikeBudget), args.Error(1)
}

// MockMediaService is a mock implementation of service.IMediaService
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) GenerateUploadURL(ctx context.Context, userID uuid.UUID, req *types.UploadURLRequest) (*types.UploadURLResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UploadURLResponse), args.Error(1)
}

func (m *MockMediaService) SavePhoto(ctx context.Context, userID uuid.UUID, req *types.SavePhotoRequest) (*types.PhotoResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PhotoResponse), args.Error(1)
}

func (m *MockMediaService) ResolveURL(ctx context.Context, userID, photoID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID, photoID)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	args := m.Called(ctx, userID, photoID)
	return args.Error(0)
}
