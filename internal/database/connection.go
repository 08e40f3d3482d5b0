// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error

	logLevel := logger.Info
	if cfg.LogLevel == "silent" {
		logLevel = logger.Silent
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Category rows are hard-deleted while products keep their reference,
		// so the schema carries no FK constraints between products and
		// categories. Dangling references resolve to null display refs.
		DisableForeignKeyConstraintWhenMigrating: true,
		// Unique-index violations surface as gorm.ErrDuplicatedKey so the
		// services can map them to their own sentinels.
		TranslateError: true,
	}

	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// gen_random_uuid() comes from pgcrypto (built in since PostgreSQL 13,
	// but the extension keeps older servers working).
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Enquiry{},
		&models.SellerEnquiry{},
		&models.PushToken{},
		&models.Notification{},
		&models.SiteSettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_role_approved ON users(role, is_approved)",
		"CREATE INDEX IF NOT EXISTS idx_users_role_active ON users(role, is_active)",

		// Category indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_parent_order ON categories(parent_id, display_order)",
		"CREATE INDEX IF NOT EXISTS idx_categories_active ON categories(is_active)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_subcategory ON products(subcategory_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured_created ON products(is_featured DESC, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_filter_attributes ON products USING GIN(filter_attributes)",

		// Enquiry indexes
		"CREATE INDEX IF NOT EXISTS idx_enquiries_responded_created ON enquiries(is_responded, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_seller_enquiries_status ON seller_enquiries(status, created_at DESC)",

		// Full-text search index
		"CREATE INDEX IF NOT EXISTS idx_products_search ON products USING GIN(to_tsvector('english', name || ' ' || description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}
