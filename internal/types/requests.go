package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/musclematch/backend/internal/models"
)

// RegisterRequest represents the request body for account creation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued session token
type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest represents the request body for owner profile edits.
// Pointer fields are left untouched when absent.
type UpdateProfileRequest struct {
	Nickname  *string        `json:"nickname"`
	Gender    *models.Gender `json:"gender"`
	BirthDate *string        `json:"birth_date"`
	Age       *int           `json:"age"`
	Location  *string        `json:"location"`
	Bio       *string        `json:"bio"`
}

// SubmitEvidenceRequest represents the request body for a verification submission
type SubmitEvidenceRequest struct {
	Category   models.EvidenceCategory `json:"category" binding:"required,oneof=identity muscle"`
	StorageKey string                  `json:"storage_key" binding:"required"`
}

// VerificationStatusResponse is the owner's view of their review state
type VerificationStatusResponse struct {
	Identity        models.VerificationState `json:"identity"`
	Muscle          models.VerificationState `json:"muscle"`
	Gender          models.Gender            `json:"gender"`
	PermissionLevel int                      `json:"permission_level"`
}

// DecisionRequest represents an admin decision on a pending category
type DecisionRequest struct {
	Category models.EvidenceCategory  `json:"category" binding:"required,oneof=identity muscle"`
	Decision models.VerificationState `json:"decision" binding:"required,oneof=approved rejected"`
}

// SetRoleRequest represents an admin role assignment
type SetRoleRequest struct {
	Role models.Role `json:"role" binding:"required,oneof=user admin"`
}

// LikeBudget is returned after spending from the daily like allowance
type LikeBudget struct {
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// UploadURLRequest asks for a presigned upload slot
type UploadURLRequest struct {
	Filename string               `json:"filename" binding:"required"`
	Category models.PhotoCategory `json:"category" binding:"required,oneof=identity muscle profile"`
}

// UploadURLResponse carries the presigned PUT URL and the storage key the
// client must echo back when recording the upload
type UploadURLResponse struct {
	UploadURL  string `json:"upload_url"`
	StorageKey string `json:"storage_key"`
}

// SavePhotoRequest records a completed upload against the caller's profile
type SavePhotoRequest struct {
	StorageKey string               `json:"storage_key" binding:"required"`
	Category   models.PhotoCategory `json:"category" binding:"required,oneof=identity muscle profile"`
}

// PhotoResponse is a stored photo reference plus a short-lived access URL
type PhotoResponse struct {
	ID        uuid.UUID            `json:"id"`
	Category  models.PhotoCategory `json:"category"`
	URL       string               `json:"url"`
	IsPrimary bool                 `json:"is_primary"`
}
