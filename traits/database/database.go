package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Godson70118993/Backend-produit/internal/domain"
)

// Open connects to the database described by databaseURL. Accepted forms are
// "sqlite://<path>" or a bare file path (":memory:" works for tests).
func Open(databaseURL string) (*gorm.DB, error) {
	path := databaseURL
	if strings.Contains(databaseURL, "://") {
		if !strings.HasPrefix(databaseURL, "sqlite://") {
			return nil, fmt.Errorf("unsupported database URL: %s", databaseURL)
		}
		path = strings.TrimPrefix(databaseURL, "sqlite://")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", path, err)
	}
	return db, nil
}

// CreateTables ensures the products table exists. Safe to call on every start.
func CreateTables(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		return fmt.Errorf("error creating products table: %w", err)
	}
	return nil
}
