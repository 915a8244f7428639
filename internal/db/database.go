package db

import (
	"fmt"

	"github.com/ikkim/localdir-backend/config"
	appLogger "github.com/ikkim/localdir-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the SQLite database file. The store has an explicit
// lifecycle: opened at process start, closed at exit; no other component
// touches the file directly.
func Initialize(cfg *config.DatabaseConfig) error {
	appLogger.Info("Opening database", map[string]interface{}{
		"path": cfg.Path,
	})

	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Use silent mode, we'll use our own logger
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite allows a single writer; one open connection avoids lock
	// contention between gorm's pooled connections.
	sqlDB.SetMaxOpenConns(1)

	appLogger.Info("Database opened successfully", map[string]interface{}{
		"path": cfg.Path,
	})
	return nil
}

// Close closes the database connection
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
