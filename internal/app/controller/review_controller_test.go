package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/internal/app/service"
	"github.com/ikkim/localdir-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReviewControllerTest(t *testing.T) (*ReviewController, service.ChallengeService, *gin.Engine, *model.Business) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	reviewRepo := repository.NewReviewRepository(testDB)
	businessRepo := repository.NewBusinessRepository(testDB)
	ratingService := service.NewRatingService(reviewRepo, businessRepo)
	challengeService := service.NewChallengeService()
	reviewService := service.NewReviewService(reviewRepo, businessRepo, ratingService, challengeService, service.NewBusinessLocks())
	reviewController := NewReviewController(reviewService)

	user := &model.User{
		ID:    model.LocalUserID,
		Name:  "Local User",
		Email: "local@localdir.app",
	}
	require.NoError(t, testDB.Create(user).Error)

	business := &model.Business{
		Name:     "Cafe Bliss",
		Category: "Food",
		Address:  "456 Oak Ave",
		Phone:    "555-0456",
	}
	require.NoError(t, testDB.Create(business).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", model.LocalUserID)
		c.Next()
	})

	return reviewController, challengeService, router, business
}

// solveCaptcha answers the arithmetic question the way a person would.
func solveCaptcha(t *testing.T, question string) string {
	t.Helper()

	var a, b int
	var op string
	_, err := fmt.Sscanf(question, "%d %s %d = ?", &a, &op, &b)
	require.NoError(t, err)

	switch op {
	case "+":
		return strconv.Itoa(a + b)
	case "-":
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		return strconv.Itoa(diff)
	default:
		t.Fatalf("unexpected operator %q in question %q", op, question)
		return ""
	}
}

func TestReviewController_CreateReview_Success(t *testing.T) {
	controller, challengeService, router, business := setupReviewControllerTest(t)

	challenge := challengeService.Issue("")

	router.POST("/businesses/:id/reviews", controller.CreateReview)

	reqBody := CreateReviewRequest{
		Rating:        5,
		Comment:       "Best flat white in town",
		SessionID:     challenge.SessionID,
		CaptchaAnswer: solveCaptcha(t, challenge.Question),
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/businesses/"+business.ID+"/reviews", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	reviewData := response["review"].(map[string]interface{})
	assert.Equal(t, "Best flat white in town", reviewData["comment"])
	assert.Equal(t, float64(5), reviewData["rating"])

	businessData := response["business"].(map[string]interface{})
	assert.Equal(t, float64(1), businessData["review_count"])
	assert.Equal(t, float64(5), businessData["average_rating"])
}

func TestReviewController_CreateReview_ChallengeFailed(t *testing.T) {
	controller, challengeService, router, business := setupReviewControllerTest(t)

	challenge := challengeService.Issue("")

	router.POST("/businesses/:id/reviews", controller.CreateReview)

	reqBody := CreateReviewRequest{
		Rating:        5,
		Comment:       "Best flat white in town",
		SessionID:     challenge.SessionID,
		CaptchaAnswer: "definitely wrong",
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/businesses/"+business.ID+"/reviews", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "CHALLENGE_FAILED", response["error"])
}

func TestReviewController_CreateReview_ChallengeBeforeValidation(t *testing.T) {
	controller, challengeService, router, business := setupReviewControllerTest(t)

	challenge := challengeService.Issue("")

	router.POST("/businesses/:id/reviews", controller.CreateReview)

	// Both the answer and the rating are invalid; the response must report
	// the challenge failure, not the rating error.
	reqBody := CreateReviewRequest{
		Rating:        99,
		Comment:       "x",
		SessionID:     challenge.SessionID,
		CaptchaAnswer: "definitely wrong",
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/businesses/"+business.ID+"/reviews", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "CHALLENGE_FAILED", response["error"])
}

func TestReviewController_CreateReview_InvalidRating(t *testing.T) {
	controller, challengeService, router, business := setupReviewControllerTest(t)

	challenge := challengeService.Issue("")

	router.POST("/businesses/:id/reviews", controller.CreateReview)

	reqBody := CreateReviewRequest{
		Rating:        6,
		Comment:       "a perfectly valid comment",
		SessionID:     challenge.SessionID,
		CaptchaAnswer: solveCaptcha(t, challenge.Question),
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/businesses/"+business.ID+"/reviews", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "REVIEW_INVALID_RATING", response["error"])
}

func TestReviewController_CreateReview_BusinessNotFound(t *testing.T) {
	controller, challengeService, router, _ := setupReviewControllerTest(t)

	challenge := challengeService.Issue("")

	router.POST("/businesses/:id/reviews", controller.CreateReview)

	reqBody := CreateReviewRequest{
		Rating:        5,
		Comment:       "a perfectly valid comment",
		SessionID:     challenge.SessionID,
		CaptchaAnswer: solveCaptcha(t, challenge.Question),
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/businesses/no-such-business/reviews", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "BUSINESS_NOT_FOUND", response["error"])
}

func TestReviewController_GetBusinessReviews(t *testing.T) {
	controller, challengeService, router, business := setupReviewControllerTest(t)

	router.POST("/businesses/:id/reviews", controller.CreateReview)
	router.GET("/businesses/:id/reviews", controller.GetBusinessReviews)

	challenge := challengeService.Issue("")
	reqBody := CreateReviewRequest{
		Rating:        4,
		Comment:       "Cozy spot, great pastries",
		SessionID:     challenge.SessionID,
		CaptchaAnswer: solveCaptcha(t, challenge.Question),
	}
	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/businesses/"+business.ID+"/reviews", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/businesses/"+business.ID+"/reviews", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	reviews := response["reviews"].([]interface{})
	assert.Len(t, reviews, 1)
	assert.Equal(t, float64(1), response["count"])
}
