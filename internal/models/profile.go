package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender is the profile's declared gender. It drives the level-3 branch of
// the permission ladder: male profiles additionally need an approved muscle
// check. The empty value means the user has not completed profile setup.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
	GenderUnset  Gender = ""
)

// Valid reports whether g is one of the selectable genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Role controls access to the moderation surface.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// AccountStatus is stored on the profile but not enforced here; suspension
// and banning are handled by the account lifecycle service.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusSuspended AccountStatus = "suspended"
	StatusBanned    AccountStatus = "banned"
)

// VerificationState is the per-category review state.
type VerificationState string

const (
	VerificationNotSubmitted VerificationState = "not_submitted"
	VerificationPending      VerificationState = "pending"
	VerificationApproved     VerificationState = "approved"
	VerificationRejected     VerificationState = "rejected"
)

func (s VerificationState) Valid() bool {
	switch s {
	case VerificationNotSubmitted, VerificationPending, VerificationApproved, VerificationRejected:
		return true
	}
	return false
}

// EvidenceCategory names one of the independently reviewed evidence types.
type EvidenceCategory string

const (
	CategoryIdentity EvidenceCategory = "identity"
	CategoryMuscle   EvidenceCategory = "muscle"
)

func (c EvidenceCategory) Valid() bool {
	return c == CategoryIdentity || c == CategoryMuscle
}

// VerificationStatus holds the review state of each evidence category.
// Identity applies to everyone; muscle is only meaningful for male profiles.
type VerificationStatus struct {
	Identity VerificationState `gorm:"size:20;not null;default:'not_submitted'" json:"identity"`
	Muscle   VerificationState `gorm:"size:20;not null;default:'not_submitted'" json:"muscle"`
}

// Get returns the state of the given category.
func (v VerificationStatus) Get(category EvidenceCategory) VerificationState {
	if category == CategoryMuscle {
		return v.Muscle
	}
	return v.Identity
}

// Set overwrites the state of the given category.
func (v *VerificationStatus) Set(category EvidenceCategory, state VerificationState) {
	if category == CategoryMuscle {
		v.Muscle = state
		return
	}
	v.Identity = state
}

// AnyPending reports whether any category is awaiting an admin decision.
func (v VerificationStatus) AnyPending() bool {
	return v.Identity == VerificationPending || v.Muscle == VerificationPending
}

// SubscriptionLevel feeds the level-4 tier of the permission ladder.
type SubscriptionLevel string

const (
	SubscriptionFree    SubscriptionLevel = "free"
	SubscriptionPremium SubscriptionLevel = "premium"
)

// Subscription is the billing state as maintained by the billing service.
// Expiry lapsing happens there; this core reads Level as stored.
type Subscription struct {
	Level     SubscriptionLevel `gorm:"size:20;not null;default:'free'" json:"level"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
}

// Profile is the durable membership record, one per user.
type Profile struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Nickname  string    `gorm:"size:50" json:"nickname"`
	Gender    Gender    `gorm:"size:10" json:"gender"`
	BirthDate string    `gorm:"size:10" json:"birth_date"` // YYYY-MM-DD
	Age       int       `json:"age"`
	Location  string    `gorm:"size:100" json:"location"`
	Bio       string    `gorm:"type:text" json:"bio"`

	Status AccountStatus `gorm:"size:20;not null;default:'active'" json:"status"`
	Role   Role          `gorm:"size:10;not null;default:'user'" json:"role"`

	VerificationStatus VerificationStatus `gorm:"embedded;embeddedPrefix:verification_" json:"verification_status"`
	Subscription       Subscription       `gorm:"embedded;embeddedPrefix:subscription_" json:"subscription"`
	DailyLikes         QuotaWindow        `gorm:"embedded;embeddedPrefix:daily_likes_" json:"daily_likes"`

	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// BeforeCreate assigns an id when the caller has not.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
