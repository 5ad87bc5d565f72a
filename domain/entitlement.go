package domain

import "time"

// UserPassEntitlement is written by the external purchase flow and only
// read here. A nil ExpiresAt means the entitlement never lapses.
type UserPassEntitlement struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"column:user_id;index;not null" json:"user_id"`
	Tier      PassTier   `gorm:"column:tier;not null" json:"tier"`
	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (UserPassEntitlement) TableName() string {
	return "pass_entitlements"
}
