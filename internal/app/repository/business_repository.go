package repository

import (
	"time"

	"github.com/ikkim/localdir-backend/internal/app/model"

	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(business *model.Business) error
	FindByID(id string) (*model.Business, error)
	FindAll() ([]model.Business, error)
	Search(query string) ([]model.Business, error)
	UpdateRatingStats(id string, averageRating float64, reviewCount int) error
	UpdateHasDeals(id string, hasDeals bool) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(business *model.Business) error {
	return r.db.Create(business).Error
}

func (r *businessRepository) FindByID(id string) (*model.Business, error) {
	var business model.Business
	if err := r.db.First(&business, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindAll() ([]model.Business, error) {
	var businesses []model.Business
	err := r.db.Order("name ASC").Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}

// Search matches the query as a substring of name, description or category.
func (r *businessRepository) Search(query string) ([]model.Business, error) {
	var businesses []model.Business
	pattern := "%" + query + "%"
	err := r.db.
		Where("name LIKE ? OR description LIKE ? OR category LIKE ?", pattern, pattern, pattern).
		Order("name ASC").
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}

// UpdateRatingStats writes the derived rating columns in a single statement.
// Only the rating recompute calls this.
func (r *businessRepository) UpdateRatingStats(id string, averageRating float64, reviewCount int) error {
	result := r.db.Model(&model.Business{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": averageRating,
			"review_count":   reviewCount,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *businessRepository) UpdateHasDeals(id string, hasDeals bool) error {
	result := r.db.Model(&model.Business{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"has_deals":  hasDeals,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
