package repository

import (
	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(favorite *model.Favorite) error
	FindByUserID(userID string) ([]model.Favorite, error)
	FindByUserAndBusiness(userID, businessID string) (*model.Favorite, error)
	Delete(userID, businessID string) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(favorite *model.Favorite) error {
	logger.Debug("Creating favorite in database", map[string]interface{}{
		"user_id":     favorite.UserID,
		"business_id": favorite.BusinessID,
	})

	if err := r.db.Create(favorite).Error; err != nil {
		logger.Error("Failed to create favorite in database", err, map[string]interface{}{
			"user_id":     favorite.UserID,
			"business_id": favorite.BusinessID,
		})
		return err
	}

	return nil
}

// FindByUserID returns the user's favorites, most recently favorited first,
// with the business record preloaded.
func (r *favoriteRepository) FindByUserID(userID string) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.Where("user_id = ?", userID).
		Preload("Business").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		logger.Error("Failed to find favorites by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	return favorites, nil
}

func (r *favoriteRepository) FindByUserAndBusiness(userID, businessID string) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.Where("user_id = ? AND business_id = ?", userID, businessID).First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Delete(userID, businessID string) error {
	logger.Debug("Deleting favorite from database", map[string]interface{}{
		"user_id":     userID,
		"business_id": businessID,
	})

	if err := r.db.Where("user_id = ? AND business_id = ?", userID, businessID).
		Delete(&model.Favorite{}).Error; err != nil {
		logger.Error("Failed to delete favorite from database", err, map[string]interface{}{
			"user_id":     userID,
			"business_id": businessID,
		})
		return err
	}

	return nil
}
