// Package store owns the embedded SQLite database: schema, models and
// the bundled seed dataset.
package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (or creates) the SQLite store at path, ensures the schema
// exists and seeds the sample dataset when the items table is empty.
// Any failure here is fatal to startup; there is no retry.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("store: enable foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the items and item_sizes tables when absent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Item{}, &SizeQuantity{}); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// Seed bulk-inserts the sample inventory when the items table is empty.
// Repeated calls against a seeded store change nothing.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Item{}).Count(&count).Error; err != nil {
		return fmt.Errorf("store: count items: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := seedItems()
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	}); err != nil {
		return fmt.Errorf("store: seed: %w", err)
	}
	return nil
}
