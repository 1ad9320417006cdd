package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile extends an account with its role and address. Exactly one per user.
type Profile struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role         Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	ImageURL     string    `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	AddressLine1 string    `gorm:"type:varchar(255);not null" json:"address_line1"`
	City         string    `gorm:"type:varchar(100);not null" json:"city"`
	State        string    `gorm:"type:varchar(100);not null" json:"state"`
	Pincode      string    `gorm:"type:varchar(10);not null" json:"pincode"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "user_profiles"
}
