package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musclematch/backend/internal/models"
	"github.com/musclematch/backend/internal/testhelpers"
	"github.com/musclematch/backend/internal/types"
)

func TestEnsureProfileBootstrapsDefaults(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)
	userID := uuid.New()

	profile, err := svc.EnsureProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, models.StatusActive, profile.Status)
	assert.Equal(t, models.RoleUser, profile.Role)
	assert.Equal(t, models.GenderUnset, profile.Gender)
	assert.Equal(t, models.VerificationNotSubmitted, profile.VerificationStatus.Identity)
	assert.Equal(t, models.SubscriptionFree, profile.Subscription.Level)
	assert.Equal(t, 0, profile.DailyLikes.Count)
}

func TestEnsureProfileIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)
	userID := uuid.New()

	first, err := svc.EnsureProfile(context.Background(), userID)
	require.NoError(t, err)

	second, err := svc.EnsureProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetProfileNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)
	profile := seedProfile(t, db, func(p *models.Profile) {
		p.Nickname = "original"
		p.Bio = "old bio"
	})

	nickname := "updated"
	gender := models.GenderMale
	updated, err := svc.UpdateProfile(context.Background(), profile.UserID, &types.UpdateProfileRequest{
		Nickname: &nickname,
		Gender:   &gender,
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Nickname)
	assert.Equal(t, models.GenderMale, updated.Gender)
	assert.Equal(t, "old bio", updated.Bio)
}

func TestUpdateProfileRejectsInvalidGender(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)
	profile := seedProfile(t, db, nil)

	bad := models.Gender("robot")
	_, err := svc.UpdateProfile(context.Background(), profile.UserID, &types.UpdateProfileRequest{Gender: &bad})
	assert.Error(t, err)

	stored := reloadProfile(t, db, profile.ID)
	assert.Equal(t, models.GenderUnset, stored.Gender)
}
