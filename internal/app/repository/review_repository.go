package repository

import (
	"github.com/ikkim/localdir-backend/internal/app/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id string) (*model.Review, error)
	FindByBusinessID(businessID string) ([]model.Review, error)
	CountAndAverage(businessID string) (int64, float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByID(id string) (*model.Review, error) {
	var review model.Review
	if err := r.db.Preload("User").First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindByBusinessID 업체별 리뷰 목록 조회 (최신순)
func (r *reviewRepository) FindByBusinessID(businessID string) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Preload("User").
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CountAndAverage returns the review count and mean rating for a business.
// A business without reviews yields (0, 0) rather than NULL.
func (r *reviewRepository) CountAndAverage(businessID string) (int64, float64, error) {
	var count int64
	if err := r.db.Model(&model.Review{}).
		Where("business_id = ?", businessID).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	if count == 0 {
		return 0, 0, nil
	}

	var average float64
	if err := r.db.Model(&model.Review{}).
		Where("business_id = ?", businessID).
		Select("AVG(rating)").
		Scan(&average).Error; err != nil {
		return 0, 0, err
	}

	return count, average, nil
}
