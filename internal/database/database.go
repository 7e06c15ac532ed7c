// Package database opens the catalog database. The hosted backend is
// PostgreSQL; the anonymous read path and local development fall back
// to a SQLite file.
package database

import (
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"robohub/internal/models"
)

// Open connects with the driver implied by the DSN: postgres for
// "postgres://" / "host=" DSNs, sqlite for everything else (a file
// path or ":memory:").
func Open(dsn string) (*gorm.DB, error) {
	if isPostgres(dsn) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if dir := filepath.Dir(dsn); !strings.Contains(dsn, ":memory:") && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates the robots and blog_posts tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Robot{}, &models.BlogPost{})
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
