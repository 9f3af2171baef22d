package database

import (
	"fmt"
	"time"

	"hostel-listing-portal/internal/config"
	"hostel-listing-portal/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	db *gorm.DB
}

func NewDB(cfg config.DatabaseConfig) (*DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, err
	}

	// Test connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// NewFromGorm wraps an existing gorm.DB instance
func NewFromGorm(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables and foreign keys using GORM AutoMigrate.
// gallery.branch_id cascades on branch deletion; user_enquiries.branch_id
// is set to NULL so the enquiry itself survives.
func (d *DB) InitSchema() error {
	return d.db.AutoMigrate(
		&models.Branch{},
		&models.GalleryImage{},
		&models.UserEnquiry{},
	)
}
