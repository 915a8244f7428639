package main

import (
	"github.com/ikkim/localdir-backend/config"
	"github.com/ikkim/localdir-backend/internal/app/repository"
	"github.com/ikkim/localdir-backend/internal/app/service"
	"github.com/ikkim/localdir-backend/internal/db"
	"github.com/ikkim/localdir-backend/pkg/logger"
)

// Seeds the local directory database with the sample dataset.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if err := db.Seed(); err != nil {
		logger.Fatal("Failed to seed database", err)
	}

	// Derive has_deals for the seeded deals, same as server startup does.
	dealRepo := repository.NewDealRepository(db.GetDB())
	businessRepo := repository.NewBusinessRepository(db.GetDB())
	dealService := service.NewDealService(dealRepo, businessRepo, service.NewBusinessLocks())
	if err := dealService.RefreshAllDealFlags(); err != nil {
		logger.Fatal("Failed to refresh deal flags after seeding", err)
	}

	logger.Info("Seeding completed")
}
