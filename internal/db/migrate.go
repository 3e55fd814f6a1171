package db

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate brings the local database up to date. The schema only holds
// sessions and the snapshot cache; tournament data lives in the backend.
func Migrate(d *gorm.DB) error {
	sqlDB, err := d.DB()
	if err != nil {
		return fmt.Errorf("unwrap db: %w", err)
	}
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
