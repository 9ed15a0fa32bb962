package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musclematch/backend/internal/models"
	"github.com/musclematch/backend/internal/testhelpers"
)

func TestRegisterCreatesUserAndInitialProfile(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register(context.Background(), "alex", "alex@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var user models.User
	require.NoError(t, db.Where("email = ?", "alex@example.com").First(&user).Error)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, models.RoleUser, profile.Role)
	assert.Equal(t, models.VerificationNotSubmitted, profile.VerificationStatus.Identity)
	assert.Equal(t, models.VerificationNotSubmitted, profile.VerificationStatus.Muscle)
	assert.Equal(t, models.SubscriptionFree, profile.Subscription.Level)
	assert.Equal(t, 0, profile.DailyLikes.Count)
	assert.Equal(t, LevelSignedIn, PermissionLevel(&profile))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "alex", "alex@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "other", "alex@example.com", "password456")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The losing insert must not leave a second user or profile behind.
	var users int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "alex@example.com").Count(&users).Error)
	assert.Equal(t, int64(1), users)
	var profiles int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&profiles).Error)
	assert.Equal(t, int64(1), profiles)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "alex", "alex@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "alex@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), "alex@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestGenerateAndValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "alex")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alex", claims.Nickname)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	issuer := NewAuthService(db, "secret-a")
	verifier := NewAuthService(db, "secret-b")

	token, err := issuer.GenerateToken(uuid.New(), "alex")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
