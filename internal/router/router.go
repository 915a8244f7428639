package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/config"
	"github.com/ikkim/localdir-backend/internal/app/controller"
	"github.com/ikkim/localdir-backend/internal/middleware"
)

type Router struct {
	userController     *controller.UserController
	businessController *controller.BusinessController
	reviewController   *controller.ReviewController
	dealController     *controller.DealController
	favoriteController *controller.FavoriteController
	captchaController  *controller.CaptchaController
	config             *config.Config
}

func NewRouter(
	userController *controller.UserController,
	businessController *controller.BusinessController,
	reviewController *controller.ReviewController,
	dealController *controller.DealController,
	favoriteController *controller.FavoriteController,
	captchaController *controller.CaptchaController,
	cfg *config.Config,
) *Router {
	return &Router{
		userController:     userController,
		businessController: businessController,
		reviewController:   reviewController,
		dealController:     dealController,
		favoriteController: favoriteController,
		captchaController:  captchaController,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.IdentityMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "LocalDir core is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", r.userController.CreateUser)
			users.GET("/me", r.userController.GetMe)
		}

		businesses := v1.Group("/businesses")
		{
			businesses.GET("", r.businessController.ListBusinesses)
			businesses.GET("/search", r.businessController.SearchBusinesses)
			businesses.GET("/:id", r.businessController.GetBusinessByID)
			businesses.POST("", r.businessController.CreateBusiness)

			businesses.GET("/:id/reviews", r.reviewController.GetBusinessReviews)
			businesses.POST("/:id/reviews", r.reviewController.CreateReview)

			businesses.GET("/:id/deals", r.dealController.GetBusinessDeals)
			businesses.POST("/:id/deals", r.dealController.CreateDeal)
		}

		deals := v1.Group("/deals")
		{
			deals.GET("/active", r.dealController.GetActiveDeals)
		}

		favorites := v1.Group("/favorites")
		{
			favorites.GET("", r.favoriteController.GetFavorites)
			favorites.GET("/:businessID", r.favoriteController.IsFavorite)
			favorites.POST("/:businessID", r.favoriteController.AddFavorite)
			favorites.DELETE("/:businessID", r.favoriteController.RemoveFavorite)
		}

		v1.POST("/captcha", r.captchaController.GenerateCaptcha)
	}

	return router
}
