package config

import (
	"fmt"
	"log"
	"os"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres connection, runs migrations and sizes the
// connection pool. Failure here is fatal for the process: the caller must
// not serve traffic without a working store.
func ConnectDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, relying on environment: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Restaurant{}); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	// Small fixed pool; connections are acquired per read/write, never held
	// across the provider fan-out.
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)

	return db, nil
}
