package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business 디렉토리에 등록된 지역 업체
//
// AverageRating, ReviewCount, HasDeals are derived columns. They are never
// written by callers directly; the rating recompute and the deal flag refresh
// are the only writers.
type Business struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"not null" json:"name"`                 // 업체명
	Category    string  `gorm:"index;not null" json:"category"`       // 카테고리 (자유 문자열)
	Description string  `gorm:"type:text" json:"description"`         // 업체 소개
	Address     string  `gorm:"type:text" json:"address"`             // 주소
	Phone       string  `gorm:"type:varchar(30)" json:"phone"`        // 연락처
	Website     *string `json:"website,omitempty"`                    // 웹사이트 (선택)

	// Derived statistics
	AverageRating float64 `gorm:"not null;default:0" json:"average_rating"` // 평균 평점 (0.0-5.0)
	ReviewCount   int     `gorm:"not null;default:0" json:"review_count"`   // 리뷰 수
	HasDeals      bool    `gorm:"not null;default:false;index" json:"has_deals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Business) TableName() string {
	return "businesses"
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
