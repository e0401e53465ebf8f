package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile maps an external auth user to the internal profile id that
// every mission row is keyed by.
type Profile struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	AuthUserID  uint           `gorm:"uniqueIndex;not null" json:"auth_user_id"`
	DisplayName string         `gorm:"size:128" json:"display_name"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}
