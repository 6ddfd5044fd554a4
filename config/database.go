package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/constella-app/api-go/models"
)

// InitDB connects to Postgres, tunes the connection pool, and migrates the
// schema. Fatal on failure.
func InitDB() *gorm.DB {
	cfg := Get()

	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access underlying sql.DB:", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Database ping failed:", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatal("Auto migration failed:", err)
	}

	return db
}

// AutoMigrate creates or updates the schema for every model. Shared with the
// test suite, which runs it against in-memory SQLite.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Community{},
		&models.CommunityMember{},
		&models.Post{},
		&models.Image{},
		&models.Comment{},
		&models.Reaction{},
		&models.Bookmark{},
		&models.RevokedToken{},
	)
}
