package database

import (
	"gorm.io/gorm"
)

// RunMigrations auto-migrates the full schema. The model structs are the
// single source of truth for the relational layout.
func RunMigrations(db *gorm.DB, models ...any) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto;").Error; err != nil {
		return err
	}

	return db.AutoMigrate(models...)
}
