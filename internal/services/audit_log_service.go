package services

import (
	"context"
	"github-summarizer-api/internal/models"
	"github-summarizer-api/internal/repository"
	"time"

	"github.com/google/uuid"
)

const maxAuditPageSize = 100

type AuditLogService interface {
	GetAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error)
	RecordKeyEvent(ctx context.Context, action string, apiKeyID uuid.UUID, details string) error
}

type auditLogService struct {
	auditLogRepo repository.AuditLogRepository
	now          func() time.Time
}

func NewAuditLogService(auditLogRepo repository.AuditLogRepository) AuditLogService {
	return &auditLogService{
		auditLogRepo: auditLogRepo,
		now:          time.Now,
	}
}

// GetAuditLogs returns one page of events, newest first. Out of range
// arguments are clamped.
func (s *auditLogService) GetAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > maxAuditPageSize {
		pageSize = maxAuditPageSize
	}
	return s.auditLogRepo.ListAuditLogs(ctx, page, pageSize)
}

func (s *auditLogService) RecordKeyEvent(ctx context.Context, action string, apiKeyID uuid.UUID, details string) error {
	log := &models.AuditLog{
		APIKeyID:  apiKeyID,
		Action:    action,
		Details:   details,
		Timestamp: s.now().UTC(),
	}
	return s.auditLogRepo.CreateAuditLog(ctx, log)
}
