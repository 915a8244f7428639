package service

import (
	"errors"

	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteService interface {
	IsFavorite(userID, businessID string) (bool, error)
	// AddFavorite is idempotent: favoriting an already-favorited business
	// succeeds silently. The business must exist.
	AddFavorite(userID, businessID string) error
	// RemoveFavorite is idempotent: removing an absent pair is a no-op.
	RemoveFavorite(userID, businessID string) error
	// ListFavorites returns the favorited businesses, most recently
	// favorited first.
	ListFavorites(userID string) ([]model.Business, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	businessRepo repository.BusinessRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	businessRepo repository.BusinessRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		businessRepo: businessRepo,
	}
}

func (s *favoriteService) IsFavorite(userID, businessID string) (bool, error) {
	_, err := s.favoriteRepo.FindByUserAndBusiness(userID, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *favoriteService) AddFavorite(userID, businessID string) error {
	// 업체 존재 확인
	if _, err := s.businessRepo.FindByID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add favorite: business not found", map[string]interface{}{
				"user_id":     userID,
				"business_id": businessID,
			})
			return ErrBusinessNotFound
		}
		return err
	}

	_, err := s.favoriteRepo.FindByUserAndBusiness(userID, businessID)
	if err == nil {
		// Already favorited; nothing to do.
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	favorite := &model.Favorite{
		UserID:     userID,
		BusinessID: businessID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return err
	}

	logger.Info("Business added to favorites", map[string]interface{}{
		"favorite_id": favorite.ID,
		"user_id":     userID,
		"business_id": businessID,
	})
	return nil
}

func (s *favoriteService) RemoveFavorite(userID, businessID string) error {
	// Delete of a missing pair is already a no-op at the storage layer.
	if err := s.favoriteRepo.Delete(userID, businessID); err != nil {
		return err
	}

	logger.Info("Business removed from favorites", map[string]interface{}{
		"user_id":     userID,
		"business_id": businessID,
	})
	return nil
}

func (s *favoriteService) ListFavorites(userID string) ([]model.Business, error) {
	favorites, err := s.favoriteRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	businesses := make([]model.Business, 0, len(favorites))
	for i := range favorites {
		businesses = append(businesses, favorites[i].Business)
	}
	return businesses, nil
}
