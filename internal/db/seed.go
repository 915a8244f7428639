package db

import (
	"time"

	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/pkg/logger"
)

// Seed fills an empty database with the sample directory the app ships with.
// Safe to call repeatedly: skipped when any business already exists.
func Seed() error {
	var count int64
	if err := DB.Model(&model.Business{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Businesses already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding sample directory data...")

	website := func(s string) *string { return &s }
	businesses := []model.Business{
		{
			Name:        "Tech Haven",
			Category:    "Electronics",
			Description: "Your local electronics store with the latest gadgets",
			Address:     "123 Main St",
			Phone:       "555-0123",
			Website:     website("techhaven.com"),
		},
		{
			Name:        "Cafe Bliss",
			Category:    "Food",
			Description: "Cozy coffee shop with artisanal blends",
			Address:     "456 Oak Ave",
			Phone:       "555-0456",
			Website:     website("cafebliss.com"),
		},
		{
			Name:        "FitZone Gym",
			Category:    "Services",
			Description: "State-of-the-art fitness center with personal training",
			Address:     "789 Fitness Blvd",
			Phone:       "555-0789",
			Website:     website("fitzone.com"),
		},
		{
			Name:        "Book Nook",
			Category:    "Retail",
			Description: "Independent bookstore with cozy reading areas",
			Address:     "321 Literature Lane",
			Phone:       "555-0321",
			Website:     website("booknook.com"),
		},
	}

	for i := range businesses {
		if err := DB.Create(&businesses[i]).Error; err != nil {
			logger.Error("Failed to create sample business", err, map[string]interface{}{
				"name": businesses[i].Name,
			})
			return err
		}
	}

	// A running promotion for the electronics store
	now := time.Now()
	code := "TECH20"
	deal := model.Deal{
		BusinessID:   businesses[0].ID,
		Title:        "20% Off Electronics",
		Description:  "Get 20% off on all electronics this weekend",
		DiscountCode: &code,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, 7),
		IsActive:     true,
	}
	if err := DB.Create(&deal).Error; err != nil {
		logger.Error("Failed to create sample deal", err)
		return err
	}
	// has_deals is a derived column owned by the deal flag refresh; the
	// caller runs that after seeding rather than writing the flag here.

	logger.Info("Sample directory data seeded successfully", map[string]interface{}{
		"businesses": len(businesses),
		"deals":      1,
	})
	return nil
}
