package handler

import (
	"strconv"

	"greenfund-demo/internal/adapter/http/dto"
	"greenfund-demo/internal/adapter/http/middleware"
	"greenfund-demo/internal/core/ports"
	"greenfund-demo/pkg/apperror"
	"greenfund-demo/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultAuditLimit = 50

// AuditHandler reads back the command audit trail of the caller's session.
type AuditHandler struct {
	audit ports.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(audit ports.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List handles GET /api/v1/session/audit?limit=N (1..100, default 50).
func (h *AuditHandler) List(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrSessionNotFound())
		return
	}

	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			response.Error(c, apperror.Validation("limit must be an integer between 1 and 100"))
			return
		}
		limit = n
	}

	logs, err := h.audit.ListBySession(c.Request.Context(), sessionID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAuditLogListResponse(logs))
}
