package service

import (
	"testing"

	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRatingServiceTest(t *testing.T) (RatingService, *model.Business, *model.User, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	reviewRepo := repository.NewReviewRepository(testDB)
	businessRepo := repository.NewBusinessRepository(testDB)
	ratingService := NewRatingService(reviewRepo, businessRepo)

	user := &model.User{
		Name:  "Test User",
		Email: "test@example.com",
	}
	testDB.Create(user)

	business := &model.Business{
		Name:     "Cafe Bliss",
		Category: "Food",
		Address:  "456 Oak Ave",
		Phone:    "555-0456",
	}
	testDB.Create(business)

	return ratingService, business, user, testDB
}

func TestRatingService_Recompute_NoReviews(t *testing.T) {
	ratingService, business, _, _ := setupRatingServiceTest(t)

	updated, err := ratingService.Recompute(business.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, updated.ReviewCount)
	assert.Equal(t, 0.0, updated.AverageRating)
}

func TestRatingService_Recompute_Mean(t *testing.T) {
	ratingService, business, user, testDB := setupRatingServiceTest(t)

	for _, rating := range []int{5, 3} {
		testDB.Create(&model.Review{
			BusinessID: business.ID,
			UserID:     user.ID,
			Rating:     rating,
			Comment:    "plenty long enough comment",
		})
	}

	updated, err := ratingService.Recompute(business.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.ReviewCount)
	assert.Equal(t, 4.0, updated.AverageRating)
}

func TestRatingService_Recompute_RoundsToOneDecimal(t *testing.T) {
	ratingService, business, user, testDB := setupRatingServiceTest(t)

	// 5, 4, 4 → 4.3333... stored as 4.3
	for _, rating := range []int{5, 4, 4} {
		testDB.Create(&model.Review{
			BusinessID: business.ID,
			UserID:     user.ID,
			Rating:     rating,
			Comment:    "plenty long enough comment",
		})
	}

	updated, err := ratingService.Recompute(business.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, updated.ReviewCount)
	assert.Equal(t, 4.3, updated.AverageRating)
}

func TestRatingService_Recompute_Idempotent(t *testing.T) {
	ratingService, business, user, testDB := setupRatingServiceTest(t)

	testDB.Create(&model.Review{
		BusinessID: business.ID,
		UserID:     user.ID,
		Rating:     4,
		Comment:    "plenty long enough comment",
	})

	first, err := ratingService.Recompute(business.ID)
	require.NoError(t, err)
	second, err := ratingService.Recompute(business.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ReviewCount, second.ReviewCount)
	assert.Equal(t, first.AverageRating, second.AverageRating)
}

func TestRatingService_Recompute_BusinessNotFound(t *testing.T) {
	ratingService, _, _, _ := setupRatingServiceTest(t)

	_, err := ratingService.Recompute("no-such-business")
	assert.Error(t, err)
}
