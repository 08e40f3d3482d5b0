// internal/services/store_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an in-memory store carrying the portable subset of the
// schema. The production migration uses Postgres column defaults and GIN
// indexes, so the tables are created by hand here; primary keys are assigned
// client-side via BaseModel.BeforeCreate.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Each in-memory connection would be its own database.
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			phone TEXT,
			company_name TEXT,
			role TEXT,
			is_active BOOLEAN,
			is_approved BOOLEAN
		)`,
		`CREATE UNIQUE INDEX idx_users_email ON users(email)`,
		`CREATE TABLE categories (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			description TEXT,
			image TEXT,
			icon TEXT,
			parent_id TEXT,
			display_order INTEGER,
			is_active BOOLEAN
		)`,
		`CREATE UNIQUE INDEX idx_categories_slug ON categories(slug)`,
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			description TEXT,
			short_description TEXT,
			images TEXT,
			video TEXT,
			category_id TEXT NOT NULL,
			subcategory_id TEXT,
			condition TEXT,
			price NUMERIC,
			show_price BOOLEAN,
			specifications TEXT,
			filter_attributes TEXT,
			moq TEXT,
			availability TEXT,
			is_featured BOOLEAN,
			is_active BOOLEAN,
			tags TEXT,
			material TEXT,
			product_type TEXT
		)`,
		`CREATE UNIQUE INDEX idx_products_slug ON products(slug)`,
	}
	for _, statement := range statements {
		require.NoError(t, db.Exec(statement).Error)
	}

	return db
}
