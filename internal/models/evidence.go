package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhotoCategory tells what an uploaded file is for. Evidence photos feed the
// verification review; profile photos are public-facing.
type PhotoCategory string

const (
	PhotoIdentity PhotoCategory = "identity"
	PhotoMuscle   PhotoCategory = "muscle"
	PhotoProfile  PhotoCategory = "profile"
)

func (c PhotoCategory) Valid() bool {
	switch c {
	case PhotoIdentity, PhotoMuscle, PhotoProfile:
		return true
	}
	return false
}

// EvidencePhoto records a reference to an uploaded object. The bytes live in
// the object store; this row only carries the storage key and display state.
type EvidencePhoto struct {
	ID         uuid.UUID     `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID  uuid.UUID     `gorm:"type:varchar(36);not null;index" json:"profile_id"`
	Category   PhotoCategory `gorm:"size:20;not null" json:"category"`
	StorageKey string        `gorm:"size:255;not null" json:"storage_key"`
	IsPrimary  bool          `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (p *EvidencePhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
