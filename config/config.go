package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type DatabaseConfig struct {
	// Path is the SQLite database file. The service runs embedded in a
	// desktop app, so storage is always a local file.
	Path string
}

type LogConfig struct {
	Level  string
	Format string
}

type SchedulerConfig struct {
	// DealRefreshSpec is a cron expression for the has_deals refresh job.
	DealRefreshSpec string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "localdir.db"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", ""),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Scheduler: SchedulerConfig{
			DealRefreshSpec: getEnv("DEAL_REFRESH_SPEC", "@every 5m"),
		},
	}

	return config, nil
}

// DSN returns the SQLite connection string. Foreign keys are enforced so
// dangling review/deal/favorite references fail at the storage layer, and
// the busy timeout keeps concurrent writers from hitting SQLITE_BUSY.
func (c *DatabaseConfig) DSN() string {
	return "file:" + c.Path + "?_foreign_keys=on&_busy_timeout=5000"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
