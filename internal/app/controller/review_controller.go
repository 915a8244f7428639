package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/service"
	apperrors "github.com/ikkim/localdir-backend/internal/errors"
	"github.com/ikkim/localdir-backend/internal/middleware"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReviewRequest is deliberately loose on rating/comment: gin binding
// must not reject them before the service checks the challenge, because the
// challenge failure has to win over content validation errors.
type CreateReviewRequest struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	SessionID     string `json:"session_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

// CreateReview 리뷰 작성 (챌린지 검증 필수)
// POST /api/v1/businesses/:id/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	businessID := c.Param("id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid review payload")
		return
	}

	review, business, err := ctrl.reviewService.SubmitReview(service.SubmitReviewInput{
		BusinessID:    businessID,
		UserID:        userID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		SessionID:     req.SessionID,
		CaptchaAnswer: req.CaptchaAnswer,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBusinessNotFound):
			apperrors.NotFound(c, apperrors.BusinessNotFound, "business not found")
		case errors.Is(err, service.ErrChallengeFailed):
			apperrors.Forbidden(c, apperrors.ChallengeFailed, "challenge verification failed, request a new challenge")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "rating must be between 1 and 5")
		case errors.Is(err, service.ErrInvalidComment):
			apperrors.BadRequest(c, apperrors.ReviewTooShort, "comment must be at least 10 characters")
		default:
			apperrors.Internal(c, err, "create review")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"review":   review,
		"business": business,
	})
}

// GetBusinessReviews 업체별 리뷰 목록 조회
// GET /api/v1/businesses/:id/reviews
func (ctrl *ReviewController) GetBusinessReviews(c *gin.Context) {
	businessID := c.Param("id")

	reviews, err := ctrl.reviewService.GetBusinessReviews(businessID)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			apperrors.NotFound(c, apperrors.BusinessNotFound, "business not found")
			return
		}
		apperrors.Internal(c, err, "get business reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}
