package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite 찜한 업체. At most one row per (user, business) pair; existence of
// the row is the whole relation.
type Favorite struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"not null;index:idx_user_business_favorite,unique;size:36" json:"user_id"`
	BusinessID string    `gorm:"not null;index:idx_user_business_favorite,unique;size:36" json:"business_id"`
	CreatedAt  time.Time `json:"created_at"`

	Business Business `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"business,omitempty"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
