package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	APIKeyPrefix      = "key_"
	DefaultAPIKeyType = "dev"
)

// APIKey is a bearer key allowed to call the summarizer endpoint.
type APIKey struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Type      string    `gorm:"not null;default:dev" json:"type"`
	Usage     int       `gorm:"not null;default:0" json:"usage"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (APIKey) TableName() string {
	return "api_keys"
}
