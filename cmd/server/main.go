package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/localdir-backend/config"
	"github.com/ikkim/localdir-backend/internal/app/controller"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/internal/app/service"
	"github.com/ikkim/localdir-backend/internal/db"
	"github.com/ikkim/localdir-backend/internal/router"
	"github.com/ikkim/localdir-backend/internal/scheduler"
	"github.com/ikkim/localdir-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := cfg.Log.Level
	if logLevel == "" {
		logLevel = "info"
		if cfg.Server.Environment == "development" {
			logLevel = "debug"
		}
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	logger.Info("Starting LocalDir core service", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"db_path":     cfg.Database.Path,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	businessRepo := repository.NewBusinessRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	dealRepo := repository.NewDealRepository(db.GetDB())
	favoriteRepo := repository.NewFavoriteRepository(db.GetDB())

	// Initialize services
	locks := service.NewBusinessLocks()
	userService := service.NewUserService(userRepo)
	businessService := service.NewBusinessService(businessRepo)
	ratingService := service.NewRatingService(reviewRepo, businessRepo)
	challengeService := service.NewChallengeService()
	reviewService := service.NewReviewService(reviewRepo, businessRepo, ratingService, challengeService, locks)
	dealService := service.NewDealService(dealRepo, businessRepo, locks)
	favoriteService := service.NewFavoriteService(favoriteRepo, businessRepo)

	// Initialize controllers
	userController := controller.NewUserController(userService)
	businessController := controller.NewBusinessController(businessService)
	reviewController := controller.NewReviewController(reviewService)
	dealController := controller.NewDealController(dealService)
	favoriteController := controller.NewFavoriteController(favoriteService)
	captchaController := controller.NewCaptchaController(challengeService)

	// Bring deal flags up to date before serving, then keep them fresh
	if err := dealService.RefreshAllDealFlags(); err != nil {
		logger.Error("Failed to refresh deal flags at startup", err)
	}
	dealFlagScheduler := scheduler.NewDealFlagScheduler(dealService, cfg.Scheduler.DealRefreshSpec)
	if err := dealFlagScheduler.Start(); err != nil {
		logger.Fatal("Failed to start deal flag scheduler", err)
	}
	defer dealFlagScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		userController,
		businessController,
		reviewController,
		dealController,
		favoriteController,
		captchaController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
