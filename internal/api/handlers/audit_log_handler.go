package handlers

import (
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/pkg/response"
	"github-summarizer-api/internal/services"
	"net/http"
	"strconv"
)

type AuditLogHandler struct {
	auditLogService services.AuditLogService
}

func NewAuditLogHandler(auditLogService services.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: auditLogService,
	}
}

func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	logs, total, err := h.auditLogService.GetAuditLogs(ctx, page, pageSize)
	if err != nil {
		logger.Logger.WithField("error", err).Error("Error fetching audit logs")
		response.Error(w, http.StatusInternalServerError, "Error fetching audit logs")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
		"page":  page,
	})
}
