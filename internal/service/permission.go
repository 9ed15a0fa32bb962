package service

import "github.com/musclematch/backend/internal/models"

// Permission levels gate feature access across the platform. Features express
// their requirement as a minimum level and compare against PermissionLevel.
const (
	LevelSignedIn         = 1 // any authenticated user with a profile
	LevelIdentityVerified = 2 // identity evidence approved
	LevelFullyVerified    = 3 // level 2 plus the gender-conditioned physique check
	LevelPremium          = 4 // level 3 plus a premium subscription
)

// PermissionLevel derives the caller's level from the profile as stored. The
// level is never persisted; it is recomputed on every read so it cannot drift
// from the verification and subscription state. Tiers are strict: each one
// requires the previous, so downgrading any input can never raise the result.
func PermissionLevel(p *models.Profile) int {
	level := LevelSignedIn

	if p.VerificationStatus.Identity == models.VerificationApproved {
		level = LevelIdentityVerified
	}

	if level >= LevelIdentityVerified {
		switch p.Gender {
		case models.GenderFemale, models.GenderOther:
			// no physique check required
			level = LevelFullyVerified
		case models.GenderMale:
			if p.VerificationStatus.Muscle == models.VerificationApproved {
				level = LevelFullyVerified
			}
		case models.GenderUnset:
			// stuck at level 2 until profile setup picks a gender
		}
	}

	if level >= LevelFullyVerified && p.Subscription.Level == models.SubscriptionPremium {
		level = LevelPremium
	}

	return level
}
