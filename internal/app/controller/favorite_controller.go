package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/service"
	apperrors "github.com/ikkim/localdir-backend/internal/errors"
	"github.com/ikkim/localdir-backend/internal/middleware"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// GetFavorites 찜 목록 조회 (최근 찜한 순)
// GET /api/v1/favorites
func (ctrl *FavoriteController) GetFavorites(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID := middleware.GetUserID(c)

	businesses, err := ctrl.favoriteService.ListFavorites(userID)
	if err != nil {
		log.Error("Failed to fetch favorites", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.Internal(c, err, "list favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": businesses,
		"count":     len(businesses),
	})
}

// IsFavorite 찜 여부 확인
// GET /api/v1/favorites/:businessID
func (ctrl *FavoriteController) IsFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	businessID := c.Param("businessID")

	isFavorite, err := ctrl.favoriteService.IsFavorite(userID, businessID)
	if err != nil {
		apperrors.Internal(c, err, "check favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business_id": businessID,
		"is_favorite": isFavorite,
	})
}

// AddFavorite 찜 추가 (멱등)
// POST /api/v1/favorites/:businessID
func (ctrl *FavoriteController) AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	businessID := c.Param("businessID")

	if err := ctrl.favoriteService.AddFavorite(userID, businessID); err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			apperrors.NotFound(c, apperrors.BusinessNotFound, "business not found")
			return
		}
		apperrors.Internal(c, err, "add favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business_id": businessID,
		"is_favorite": true,
	})
}

// RemoveFavorite 찜 제거 (멱등)
// DELETE /api/v1/favorites/:businessID
func (ctrl *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	businessID := c.Param("businessID")

	if err := ctrl.favoriteService.RemoveFavorite(userID, businessID); err != nil {
		apperrors.Internal(c, err, "remove favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business_id": businessID,
		"is_favorite": false,
	})
}
