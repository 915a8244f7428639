package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/service"
	apperrors "github.com/ikkim/localdir-backend/internal/errors"
)

type BusinessController struct {
	businessService service.BusinessService
}

func NewBusinessController(businessService service.BusinessService) *BusinessController {
	return &BusinessController{
		businessService: businessService,
	}
}

// ListBusinesses 업체 목록 조회
// GET /api/v1/businesses
func (ctrl *BusinessController) ListBusinesses(c *gin.Context) {
	businesses, err := ctrl.businessService.List()
	if err != nil {
		apperrors.Internal(c, err, "list businesses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businesses": businesses,
		"count":      len(businesses),
	})
}

// SearchBusinesses 업체 검색
// GET /api/v1/businesses/search?q=
func (ctrl *BusinessController) SearchBusinesses(c *gin.Context) {
	query := c.Query("q")

	businesses, err := ctrl.businessService.Search(query)
	if err != nil {
		apperrors.Internal(c, err, "search businesses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businesses": businesses,
		"count":      len(businesses),
		"query":      query,
	})
}

// GetBusinessByID 업체 상세 조회
// GET /api/v1/businesses/:id
func (ctrl *BusinessController) GetBusinessByID(c *gin.Context) {
	id := c.Param("id")

	business, err := ctrl.businessService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			apperrors.NotFound(c, apperrors.BusinessNotFound, "business not found")
			return
		}
		apperrors.Internal(c, err, "get business")
		return
	}

	c.JSON(http.StatusOK, business)
}

// CreateBusiness 업체 등록
// POST /api/v1/businesses
func (ctrl *BusinessController) CreateBusiness(c *gin.Context) {
	var input service.CreateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid business payload")
		return
	}

	business, err := ctrl.businessService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNameMissing) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "business name is required")
			return
		}
		apperrors.Internal(c, err, "create business")
		return
	}

	c.JSON(http.StatusCreated, business)
}
