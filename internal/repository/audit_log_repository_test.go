package repository

import (
	"context"
	"github-summarizer-api/internal/models"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRepository_ListPagesNewestFirst(t *testing.T) {
	repo := NewAuditLogRepository(newTestDB(t))
	ctx := context.Background()
	keyID := uuid.New()
	base := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	actions := []string{models.AuditActionKeyCreated, models.AuditActionKeyRegenerated, models.AuditActionKeyDeleted}
	for i, action := range actions {
		require.NoError(t, repo.CreateAuditLog(ctx, &models.AuditLog{
			APIKeyID:  keyID,
			Action:    action,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	page1, total, err := repo.ListAuditLogs(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 2)
	assert.Equal(t, models.AuditActionKeyDeleted, page1[0].Action)
	assert.Equal(t, models.AuditActionKeyRegenerated, page1[1].Action)
	assert.Equal(t, keyID, page1[0].APIKeyID)

	page2, total, err := repo.ListAuditLogs(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page2, 1)
	assert.Equal(t, models.AuditActionKeyCreated, page2[0].Action)
}

func TestAuditLogRepository_ListEmpty(t *testing.T) {
	repo := NewAuditLogRepository(newTestDB(t))

	logs, total, err := repo.ListAuditLogs(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, logs)
}
