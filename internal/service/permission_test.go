package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/musclematch/backend/internal/models"
)

func profileWith(gender models.Gender, identity, muscle models.VerificationState, sub models.SubscriptionLevel) *models.Profile {
	return &models.Profile{
		Gender: gender,
		VerificationStatus: models.VerificationStatus{
			Identity: identity,
			Muscle:   muscle,
		},
		Subscription: models.Subscription{Level: sub},
	}
}

func TestPermissionLevel(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.Profile
		want    int
	}{
		{
			name:    "fresh profile is level 1",
			profile: profileWith(models.GenderUnset, models.VerificationNotSubmitted, models.VerificationNotSubmitted, models.SubscriptionFree),
			want:    LevelSignedIn,
		},
		{
			name:    "male identity approved is level 2",
			profile: profileWith(models.GenderMale, models.VerificationApproved, models.VerificationNotSubmitted, models.SubscriptionFree),
			want:    LevelIdentityVerified,
		},
		{
			name:    "male needs both approvals for level 3",
			profile: profileWith(models.GenderMale, models.VerificationApproved, models.VerificationApproved, models.SubscriptionFree),
			want:    LevelFullyVerified,
		},
		{
			name:    "male muscle approved without identity stays level 1",
			profile: profileWith(models.GenderMale, models.VerificationPending, models.VerificationApproved, models.SubscriptionFree),
			want:    LevelSignedIn,
		},
		{
			name:    "female skips the muscle check",
			profile: profileWith(models.GenderFemale, models.VerificationApproved, models.VerificationNotSubmitted, models.SubscriptionFree),
			want:    LevelFullyVerified,
		},
		{
			name:    "female reaches level 3 even with rejected muscle state",
			profile: profileWith(models.GenderFemale, models.VerificationApproved, models.VerificationRejected, models.SubscriptionFree),
			want:    LevelFullyVerified,
		},
		{
			name:    "other gender skips the muscle check",
			profile: profileWith(models.GenderOther, models.VerificationApproved, models.VerificationNotSubmitted, models.SubscriptionFree),
			want:    LevelFullyVerified,
		},
		{
			name:    "unset gender is capped at level 2",
			profile: profileWith(models.GenderUnset, models.VerificationApproved, models.VerificationApproved, models.SubscriptionPremium),
			want:    LevelIdentityVerified,
		},
		{
			name:    "premium on top of full verification is level 4",
			profile: profileWith(models.GenderMale, models.VerificationApproved, models.VerificationApproved, models.SubscriptionPremium),
			want:    LevelPremium,
		},
		{
			name:    "premium female without muscle state is level 4",
			profile: profileWith(models.GenderFemale, models.VerificationApproved, models.VerificationNotSubmitted, models.SubscriptionPremium),
			want:    LevelPremium,
		},
		{
			name:    "premium alone without identity approval is level 1",
			profile: profileWith(models.GenderMale, models.VerificationNotSubmitted, models.VerificationNotSubmitted, models.SubscriptionPremium),
			want:    LevelSignedIn,
		},
		{
			name:    "premium male missing muscle approval is level 2",
			profile: profileWith(models.GenderMale, models.VerificationApproved, models.VerificationPending, models.SubscriptionPremium),
			want:    LevelIdentityVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PermissionLevel(tt.profile))
		})
	}
}

func TestPermissionLevelMonotonicDowngrade(t *testing.T) {
	// Revoking the muscle approval on a level-3 male must lower the level.
	p := profileWith(models.GenderMale, models.VerificationApproved, models.VerificationApproved, models.SubscriptionFree)
	assert.Equal(t, LevelFullyVerified, PermissionLevel(p))

	p.VerificationStatus.Muscle = models.VerificationRejected
	assert.Equal(t, LevelIdentityVerified, PermissionLevel(p))
}

func TestPermissionLevelDoesNotMutate(t *testing.T) {
	p := profileWith(models.GenderMale, models.VerificationApproved, models.VerificationApproved, models.SubscriptionPremium)
	before := *p
	_ = PermissionLevel(p)
	assert.Equal(t, before, *p)
}
