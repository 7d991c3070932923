package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuditActionKeyCreated     = "key_created"
	AuditActionKeyRegenerated = "key_regenerated"
	AuditActionKeyDeleted     = "key_deleted"
)

// AuditLog records one change to an API key. The key value itself is never
// stored here.
type AuditLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	APIKeyID  uuid.UUID `gorm:"type:uuid;index" json:"apiKeyId"`
	Action    string    `gorm:"not null" json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
