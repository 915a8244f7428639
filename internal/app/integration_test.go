package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/controller"
	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/internal/app/service"
	"github.com/ikkim/localdir-backend/internal/db"
	"github.com/ikkim/localdir-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestServer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	DealService service.DealService
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	// Setup database
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	localUser := &model.User{
		ID:    model.LocalUserID,
		Name:  "Local User",
		Email: "local@localdir.app",
	}
	require.NoError(t, testDB.Create(localUser).Error)

	// Setup repositories
	userRepo := repository.NewUserRepository(testDB)
	businessRepo := repository.NewBusinessRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	dealRepo := repository.NewDealRepository(testDB)
	favoriteRepo := repository.NewFavoriteRepository(testDB)

	// Setup services
	locks := service.NewBusinessLocks()
	userService := service.NewUserService(userRepo)
	businessService := service.NewBusinessService(businessRepo)
	ratingService := service.NewRatingService(reviewRepo, businessRepo)
	challengeService := service.NewChallengeService()
	reviewService := service.NewReviewService(reviewRepo, businessRepo, ratingService, challengeService, locks)
	dealService := service.NewDealService(dealRepo, businessRepo, locks)
	favoriteService := service.NewFavoriteService(favoriteRepo, businessRepo)

	// Setup controllers
	userController := controller.NewUserController(userService)
	businessController := controller.NewBusinessController(businessService)
	reviewController := controller.NewReviewController(reviewService)
	dealController := controller.NewDealController(dealService)
	favoriteController := controller.NewFavoriteController(favoriteService)
	captchaController := controller.NewCaptchaController(challengeService)

	// Setup router
	router := gin.New()
	router.Use(middleware.IdentityMiddleware())

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", userController.CreateUser)
			users.GET("/me", userController.GetMe)
		}

		businesses := v1.Group("/businesses")
		{
			businesses.GET("", businessController.ListBusinesses)
			businesses.GET("/search", businessController.SearchBusinesses)
			businesses.GET("/:id", businessController.GetBusinessByID)
			businesses.POST("", businessController.CreateBusiness)

			businesses.GET("/:id/reviews", reviewController.GetBusinessReviews)
			businesses.POST("/:id/reviews", reviewController.CreateReview)

			businesses.GET("/:id/deals", dealController.GetBusinessDeals)
			businesses.POST("/:id/deals", dealController.CreateDeal)
		}

		deals := v1.Group("/deals")
		{
			deals.GET("/active", dealController.GetActiveDeals)
		}

		favorites := v1.Group("/favorites")
		{
			favorites.GET("", favoriteController.GetFavorites)
			favorites.GET("/:businessID", favoriteController.IsFavorite)
			favorites.POST("/:businessID", favoriteController.AddFavorite)
			favorites.DELETE("/:businessID", favoriteController.RemoveFavorite)
		}

		v1.POST("/captcha", captchaController.GenerateCaptcha)
	}

	return &TestServer{
		Router:      router,
		DB:          testDB,
		DealService: dealService,
	}
}

func (ts *TestServer) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func answerFor(t *testing.T, question string) string {
	t.Helper()

	var a, b int
	var op string
	_, err := fmt.Sscanf(question, "%d %s %d = ?", &a, &op, &b)
	require.NoError(t, err)

	switch op {
	case "+":
		return fmt.Sprintf("%d", a+b)
	case "-":
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		return fmt.Sprintf("%d", diff)
	default:
		t.Fatalf("unexpected operator %q", op)
		return ""
	}
}

func TestCompleteDirectoryJourney(t *testing.T) {
	ts := setupIntegrationTest(t)
	defer db.CleanupTestDB(ts.DB)

	// 1. Register a business
	t.Log("Step 1: Create business")
	w := ts.doJSON(t, http.MethodPost, "/api/v1/businesses", map[string]interface{}{
		"name":        "Cafe Bliss",
		"category":    "Food",
		"description": "Cozy coffee shop with fresh pastries",
		"address":     "456 Oak Ave",
		"phone":       "555-0456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var createdBusiness map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &createdBusiness))
	businessID := createdBusiness["id"].(string)
	require.NotEmpty(t, businessID)

	// 2. Find it via search
	t.Log("Step 2: Search directory")
	w = ts.doJSON(t, http.MethodGet, "/api/v1/businesses/search?q=coffee", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var searchResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &searchResp))
	assert.Equal(t, float64(1), searchResp["count"])

	// 3. Request a challenge and submit a review
	t.Log("Step 3: Submit review")
	w = ts.doJSON(t, http.MethodPost, "/api/v1/captcha", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var challenge service.Challenge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &challenge))

	w = ts.doJSON(t, http.MethodPost, "/api/v1/businesses/"+businessID+"/reviews", map[string]interface{}{
		"rating":         5,
		"comment":        "Best flat white in town",
		"session_id":     challenge.SessionID,
		"captcha_answer": answerFor(t, challenge.Question),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reviewResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviewResp))
	updatedBusiness := reviewResp["business"].(map[string]interface{})
	assert.Equal(t, float64(1), updatedBusiness["review_count"])
	assert.Equal(t, float64(5), updatedBusiness["average_rating"])

	// 4. A consumed challenge cannot be replayed
	t.Log("Step 4: Challenge replay rejected")
	w = ts.doJSON(t, http.MethodPost, "/api/v1/businesses/"+businessID+"/reviews", map[string]interface{}{
		"rating":         4,
		"comment":        "Trying to reuse the same challenge",
		"session_id":     challenge.SessionID,
		"captcha_answer": answerFor(t, challenge.Question),
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// 5. Favorite the business
	t.Log("Step 5: Add favorite")
	w = ts.doJSON(t, http.MethodPost, "/api/v1/favorites/"+businessID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.doJSON(t, http.MethodGet, "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var favResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favResp))
	assert.Equal(t, float64(1), favResp["count"])

	// 6. Publish a deal and see both the active list and the flag update
	t.Log("Step 6: Publish deal")
	now := time.Now()
	w = ts.doJSON(t, http.MethodPost, "/api/v1/businesses/"+businessID+"/deals", map[string]interface{}{
		"title":         "Morning Special",
		"description":   "Half price espresso before 9am",
		"discount_code": "EARLYBIRD",
		"start_date":    now.Add(-time.Hour).Format(time.RFC3339),
		"end_date":      now.Add(7 * 24 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.doJSON(t, http.MethodGet, "/api/v1/deals/active", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dealsResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dealsResp))
	assert.Equal(t, float64(1), dealsResp["count"])

	w = ts.doJSON(t, http.MethodGet, "/api/v1/businesses/"+businessID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, true, fetched["has_deals"])

	// 7. The identity header switches the acting user
	t.Log("Step 7: Second user has own favorites")
	w = ts.doJSON(t, http.MethodPost, "/api/v1/users", map[string]interface{}{
		"name":  "Jamie Park",
		"email": "jamie@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var newUser map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &newUser))
	newUserID := newUser["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil)
	req.Header.Set(middleware.UserIDHeader, newUserID)
	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favResp))
	assert.Equal(t, float64(0), favResp["count"])
}

func TestDealFlagLapsesAfterRefresh(t *testing.T) {
	ts := setupIntegrationTest(t)
	defer db.CleanupTestDB(ts.DB)

	business := &model.Business{
		Name:     "Tech Haven",
		Category: "Electronics",
		Address:  "123 Main St",
		Phone:    "555-0123",
		HasDeals: true,
	}
	require.NoError(t, ts.DB.Create(business).Error)

	now := time.Now()
	deal := &model.Deal{
		BusinessID: business.ID,
		Title:      "Expired Promo",
		StartDate:  now.Add(-48 * time.Hour),
		EndDate:    now.Add(-24 * time.Hour),
		IsActive:   true,
	}
	require.NoError(t, ts.DB.Create(deal).Error)

	// The scheduler drives this in production.
	require.NoError(t, ts.DealService.RefreshAllDealFlags())

	w := ts.doJSON(t, http.MethodGet, "/api/v1/businesses/"+business.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, false, fetched["has_deals"])
}
