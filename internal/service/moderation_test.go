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

func TestListPendingReturnsOnlyPendingProfiles(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	admin := seedProfile(t, db, func(p *models.Profile) { p.Role = models.RoleAdmin })

	identityPending := seedProfile(t, db, func(p *models.Profile) {
		p.VerificationStatus.Identity = models.VerificationPending
	})
	musclePending := seedProfile(t, db, func(p *models.Profile) {
		p.Gender = models.GenderMale
		p.VerificationStatus.Identity = models.VerificationApproved
		p.VerificationStatus.Muscle = models.VerificationPending
	})
	bothPending := seedProfile(t, db, func(p *models.Profile) {
		p.Gender = models.GenderMale
		p.VerificationStatus.Identity = models.VerificationPending
		p.VerificationStatus.Muscle = models.VerificationPending
	})
	seedProfile(t, db, func(p *models.Profile) {
		p.VerificationStatus.Identity = models.VerificationApproved
	})
	seedProfile(t, db, func(p *models.Profile) {
		p.VerificationStatus.Identity = models.VerificationRejected
	})

	pending, err := svc.ListPending(context.Background(), admin.UserID)
	require.NoError(t, err)
	require.Len(t, pending, 3)

	ids := make(map[uuid.UUID]bool, len(pending))
	for _, p := range pending {
		ids[p.ID] = true
	}
	assert.True(t, ids[identityPending.ID])
	assert.True(t, ids[musclePending.ID])
	assert.True(t, ids[bothPending.ID])
}

func TestListPendingRequiresAdmin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	user := seedProfile(t, db, nil)
	_, err := svc.ListPending(context.Background(), user.UserID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRecordDecisionApprove(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	admin := seedProfile(t, db, func(p *models.Profile) { p.Role = models.RoleAdmin })
	target := seedProfile(t, db, func(p *models.Profile) {
		p.VerificationStatus.Identity = models.VerificationPending
	})

	status, err := svc.RecordDecision(context.Background(), admin.UserID, target.ID, models.CategoryIdentity, models.VerificationApproved)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationApproved, status.Identity)
	assert.Equal(t, models.VerificationNotSubmitted, status.Muscle)

	stored := reloadProfile(t, db, target.ID)
	assert.Equal(t, models.VerificationApproved, stored.VerificationStatus.Identity)
}

func TestRecordDecisionRevokesApproval(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	admin := seedProfile(t, db, func(p *models.Profile) { p.Role = models.RoleAdmin })
	target := seedProfile(t, db, func(p *models.Profile) {
		p.VerificationStatus.Identity = models.VerificationApproved
	})

	// The admin path may move any state, including revoking an approval.
	status, err := svc.RecordDecision(context.Background(), admin.UserID, target.ID, models.CategoryIdentity, models.VerificationRejected)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationRejected, status.Identity)
}

func TestRecordDecisionDeniedLeavesStateUntouched(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	caller := seedProfile(t, db, nil)
	target := seedProfile(t, db, func(p *models.Profile) {
		p.VerificationStatus.Identity = models.VerificationPending
	})

	_, err := svc.RecordDecision(context.Background(), caller.UserID, target.ID, models.CategoryIdentity, models.VerificationApproved)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	stored := reloadProfile(t, db, target.ID)
	assert.Equal(t, models.VerificationPending, stored.VerificationStatus.Identity)
}

func TestRecordDecisionTargetNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	admin := seedProfile(t, db, func(p *models.Profile) { p.Role = models.RoleAdmin })
	_, err := svc.RecordDecision(context.Background(), admin.UserID, uuid.New(), models.CategoryIdentity, models.VerificationApproved)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSetRolePromotesUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	admin := seedProfile(t, db, func(p *models.Profile) { p.Role = models.RoleAdmin })
	target := seedProfile(t, db, nil)

	role, err := svc.SetRole(context.Background(), admin.UserID, target.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	stored := reloadProfile(t, db, target.ID)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestSetRoleAllowsSelfDemotion(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	admin := seedProfile(t, db, func(p *models.Profile) { p.Role = models.RoleAdmin })

	role, err := svc.SetRole(context.Background(), admin.UserID, admin.ID, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	// The demoted admin loses the moderation surface on the next call.
	_, err = svc.ListPending(context.Background(), admin.UserID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSetRoleRequiresAdmin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	user := seedProfile(t, db, nil)
	other := seedProfile(t, db, nil)

	_, err := svc.SetRole(context.Background(), user.UserID, other.ID, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSetRoleTargetNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewModerationService(db)

	admin := seedProfile(t, db, func(p *models.Profile) { p.Role = models.RoleAdmin })
	_, err := svc.SetRole(context.Background(), admin.UserID, uuid.New(), models.RoleAdmin)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
