package repository

import (
	"time"

	"github.com/ikkim/localdir-backend/internal/app/model"

	"gorm.io/gorm"
)

type DealRepository interface {
	Create(deal *model.Deal) error
	FindByID(id string) (*model.Deal, error)
	FindByBusinessID(businessID string) ([]model.Deal, error)
	FindActive(now time.Time, businessID string) ([]model.Deal, error)
	HasActive(businessID string, now time.Time) (bool, error)
}

type dealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(deal *model.Deal) error {
	return r.db.Create(deal).Error
}

func (r *dealRepository) FindByID(id string) (*model.Deal, error) {
	var deal model.Deal
	if err := r.db.First(&deal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

// FindByBusinessID 업체별 프로모션 전체 조회 (활성 여부 무관)
func (r *dealRepository) FindByBusinessID(businessID string) ([]model.Deal, error) {
	var deals []model.Deal
	err := r.db.Where("business_id = ?", businessID).
		Order("end_date ASC").
		Find(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

// FindActive returns deals where is_active is set and the window contains
// now, soonest-expiring first. An empty businessID queries across all
// businesses.
func (r *dealRepository) FindActive(now time.Time, businessID string) ([]model.Deal, error) {
	query := r.db.Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now)
	if businessID != "" {
		query = query.Where("business_id = ?", businessID)
	}

	var deals []model.Deal
	if err := query.Order("end_date ASC").Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

// HasActive applies the same active predicate as FindActive.
func (r *dealRepository) HasActive(businessID string, now time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&model.Deal{}).
		Where("business_id = ? AND is_active = ? AND start_date <= ? AND end_date >= ?",
			businessID, true, now, now).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
