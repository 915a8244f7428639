package service

import (
	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/pkg/logger"
	"github.com/ikkim/localdir-backend/pkg/util"
)

// RatingService keeps the derived rating columns of a business consistent
// with its persisted reviews. It is the only writer of average_rating and
// review_count.
type RatingService interface {
	// Recompute reads all reviews for the business, recalculates count and
	// mean rating, and writes both atomically. Idempotent: an unchanged
	// review set yields an unchanged result. Zero reviews store 0 / 0.0.
	Recompute(businessID string) (*model.Business, error)
}

type ratingService struct {
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
}

func NewRatingService(
	reviewRepo repository.ReviewRepository,
	businessRepo repository.BusinessRepository,
) RatingService {
	return &ratingService{
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
	}
}

func (s *ratingService) Recompute(businessID string) (*model.Business, error) {
	count, average, err := s.reviewRepo.CountAndAverage(businessID)
	if err != nil {
		logger.Error("Failed to aggregate reviews", err, map[string]interface{}{
			"business_id": businessID,
		})
		return nil, err
	}

	// Stored rounded to one decimal; see util.RoundRating for the policy.
	rounded := util.RoundRating(average)

	if err := s.businessRepo.UpdateRatingStats(businessID, rounded, int(count)); err != nil {
		logger.Error("Failed to write rating stats", err, map[string]interface{}{
			"business_id": businessID,
		})
		return nil, err
	}

	logger.Debug("Recomputed business rating", map[string]interface{}{
		"business_id":    businessID,
		"review_count":   count,
		"average_rating": rounded,
	})

	return s.businessRepo.FindByID(businessID)
}
