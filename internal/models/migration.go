package models

import "gorm.io/gorm"

// MigrationRecord marks a schema migration as applied.
type MigrationRecord struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}

func (MigrationRecord) TableName() string {
	return "migration_records"
}
