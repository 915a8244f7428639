package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/service"
	apperrors "github.com/ikkim/localdir-backend/internal/errors"
)

type DealController struct {
	dealService service.DealService
}

func NewDealController(dealService service.DealService) *DealController {
	return &DealController{
		dealService: dealService,
	}
}

type CreateDealRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	DiscountCode *string   `json:"discount_code"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	IsActive     *bool     `json:"is_active"`
}

// GetActiveDeals 현재 진행 중인 프로모션 조회 (전체 또는 업체별)
// GET /api/v1/deals/active?business_id=
func (ctrl *DealController) GetActiveDeals(c *gin.Context) {
	businessID := c.Query("business_id")

	deals, err := ctrl.dealService.ActiveDeals(time.Now(), businessID)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			apperrors.NotFound(c, apperrors.BusinessNotFound, "business not found")
			return
		}
		apperrors.Internal(c, err, "get active deals")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deals": deals,
		"count": len(deals),
	})
}

// GetBusinessDeals 업체별 프로모션 전체 조회
// GET /api/v1/businesses/:id/deals
func (ctrl *DealController) GetBusinessDeals(c *gin.Context) {
	businessID := c.Param("id")

	deals, err := ctrl.dealService.GetBusinessDeals(businessID)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			apperrors.NotFound(c, apperrors.BusinessNotFound, "business not found")
			return
		}
		apperrors.Internal(c, err, "get business deals")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deals": deals,
		"count": len(deals),
	})
}

// CreateDeal 프로모션 등록
// POST /api/v1/businesses/:id/deals
func (ctrl *DealController) CreateDeal(c *gin.Context) {
	businessID := c.Param("id")

	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid deal payload")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	deal, err := ctrl.dealService.CreateDeal(service.CreateDealInput{
		BusinessID:   businessID,
		Title:        req.Title,
		Description:  req.Description,
		DiscountCode: req.DiscountCode,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsActive:     isActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBusinessNotFound):
			apperrors.NotFound(c, apperrors.BusinessNotFound, "business not found")
		case errors.Is(err, service.ErrDealInvalidWindow):
			apperrors.BadRequest(c, apperrors.DealInvalidWindow, "end date must be after start date")
		default:
			apperrors.Internal(c, err, "create deal")
		}
		return
	}

	c.JSON(http.StatusCreated, deal)
}
