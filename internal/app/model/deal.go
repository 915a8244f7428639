package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deal 업체 프로모션. A deal is "active" only when IsActive is set AND the
// current time falls inside [StartDate, EndDate]; both must be checked.
type Deal struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	BusinessID   string    `gorm:"not null;index;size:36" json:"business_id"` // 업체 ID
	Business     Business  `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"-"`
	Title        string    `gorm:"not null" json:"title"`             // 프로모션 제목
	Description  string    `gorm:"type:text" json:"description"`      // 상세 내용
	DiscountCode *string   `json:"discount_code,omitempty"`           // 할인 코드 (선택)
	StartDate    time.Time `gorm:"not null;index" json:"start_date"`  // 시작일
	EndDate      time.Time `gorm:"not null;index" json:"end_date"`    // 종료일 (시작일 이후)
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Deal) TableName() string {
	return "deals"
}

func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// ActiveAt reports whether the deal qualifies as active at the given instant.
// Window boundaries are inclusive on both ends.
func (d *Deal) ActiveAt(now time.Time) bool {
	return d.IsActive && !now.Before(d.StartDate) && !now.After(d.EndDate)
}
