package migrations

import (
	"github-summarizer-api/internal/models"

	"gorm.io/gorm"
)

type Migration struct {
	Name string
	Run  func(*gorm.DB) error
}

// GetMigrations lists schema migrations in the order they must be applied.
func GetMigrations() []Migration {
	return []Migration{
		{
			Name: "CreateAPIKeysTable",
			Run: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.APIKey{})
			},
		},
		{
			Name: "AddAPIKeysUsageCheck",
			Run: func(db *gorm.DB) error {
				return db.Exec(`ALTER TABLE api_keys ADD CONSTRAINT api_keys_usage_non_negative CHECK (usage >= 0)`).Error
			},
		},
		{
			Name: "CreateAuditLogsTable",
			Run: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.AuditLog{})
			},
		},
	}
}
