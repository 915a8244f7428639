package db

import (
	"github.com/ikkim/localdir-backend/internal/app/model"
	"github.com/ikkim/localdir-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Business{},
		&model.Review{},
		&model.Deal{},
		&model.Favorite{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedLocalUser(); err != nil {
		logger.Error("Failed to seed local user during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// seedLocalUser creates the default desktop identity. All requests without an
// explicit user act as this user, so it must exist before the first call.
func seedLocalUser() error {
	var count int64
	if err := DB.Model(&model.User{}).Where("id = ?", model.LocalUserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user := model.User{
		ID:    model.LocalUserID,
		Name:  "Local User",
		Email: "local@localdir.app",
	}
	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	logger.Info("Seeded default local user", map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}
