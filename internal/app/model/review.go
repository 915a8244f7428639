package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review 업체 리뷰. Immutable once created: there is no update or delete path.
type Review struct {
	ID         string   `gorm:"primaryKey;size:36" json:"id"`
	BusinessID string   `gorm:"not null;index;size:36" json:"business_id"` // 업체 ID
	Business   Business `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"-"`
	UserID     string   `gorm:"not null;index;size:36" json:"user_id"` // 작성자 ID
	User       User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating     int      `gorm:"not null" json:"rating"`            // 평점 (1-5)
	Comment    string   `gorm:"type:text;not null" json:"comment"` // 리뷰 내용

	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
