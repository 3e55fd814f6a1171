// Package db owns the console's local sqlite database: sessions and the
// snapshot cache. Tournament data never lands here; the backend is the
// source of truth for that.
package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open opens the local database at path, creating it on first run.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
