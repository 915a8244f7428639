package service

import (
	"errors"
	"strings"

	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrChallengeFailed = errors.New("challenge verification failed")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidComment  = errors.New("comment must be at least 10 characters")
)

// minCommentLength applies to the comment after trimming whitespace.
const minCommentLength = 10

type SubmitReviewInput struct {
	BusinessID    string
	UserID        string
	Rating        int
	Comment       string
	SessionID     string
	CaptchaAnswer string
}

type ReviewService interface {
	// SubmitReview validates and commits a new review, then synchronously
	// refreshes the business's derived rating. Nothing is written unless
	// every check passes.
	SubmitReview(input SubmitReviewInput) (*model.Review, *model.Business, error)
	GetBusinessReviews(businessID string) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
	ratingSvc    RatingService
	challengeSvc ChallengeService
	locks        *BusinessLocks
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	businessRepo repository.BusinessRepository,
	ratingSvc RatingService,
	challengeSvc ChallengeService,
	locks *BusinessLocks,
) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
		ratingSvc:    ratingSvc,
		challengeSvc: challengeSvc,
		locks:        locks,
	}
}

func (s *reviewService) SubmitReview(input SubmitReviewInput) (*model.Review, *model.Business, error) {
	// 업체 존재 확인
	if _, err := s.businessRepo.FindByID(input.BusinessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBusinessNotFound
		}
		return nil, nil, err
	}

	// The challenge is checked before content validation. Reporting a
	// validation error first would let a bot probe rating/comment rules
	// without ever answering the challenge. Verification and consumption
	// are one atomic step, so the challenge is single-use even across
	// concurrent submissions, and stays single-use when validation below
	// rejects the content.
	if !s.challengeSvc.VerifyAndConsume(input.SessionID, input.CaptchaAnswer) {
		logger.Warn("Review submission failed challenge", map[string]interface{}{
			"business_id": input.BusinessID,
			"user_id":     input.UserID,
			"session_id":  input.SessionID,
		})
		return nil, nil, ErrChallengeFailed
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, nil, ErrInvalidRating
	}
	if len(strings.TrimSpace(input.Comment)) < minCommentLength {
		return nil, nil, ErrInvalidComment
	}

	// Serialize append+recompute per business so two concurrent submissions
	// cannot interleave between the insert and the stats write.
	lock := s.locks.Get(input.BusinessID)
	lock.Lock()
	defer lock.Unlock()

	review := &model.Review{
		BusinessID: input.BusinessID,
		UserID:     input.UserID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"business_id": input.BusinessID,
			"user_id":     input.UserID,
		})
		return nil, nil, err
	}

	business, err := s.ratingSvc.Recompute(input.BusinessID)
	if err != nil {
		return nil, nil, err
	}

	loaded, err := s.reviewRepo.FindByID(review.ID)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Review submitted", map[string]interface{}{
		"review_id":      review.ID,
		"business_id":    input.BusinessID,
		"rating":         input.Rating,
		"review_count":   business.ReviewCount,
		"average_rating": business.AverageRating,
	})
	return loaded, business, nil
}

func (s *reviewService) GetBusinessReviews(businessID string) ([]model.Review, error) {
	if _, err := s.businessRepo.FindByID(businessID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return s.reviewRepo.FindByBusinessID(businessID)
}
