package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"greenfund-demo/internal/core/domain"
	"greenfund-demo/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful session commands.
// It maps HTTP methods and paths to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful commands (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var sessionID *uuid.UUID
		resourceID := ""
		if id, ok := SessionIDFrom(c); ok {
			sessionID = &id
			resourceID = id.String()
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			SessionID:    sessionID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/sessions" && method == http.MethodPost:
		return domain.AuditActionCreateSession, "session"
	case path == "/api/v1/session" && method == http.MethodDelete:
		return domain.AuditActionCloseSession, "session"
	case path == "/api/v1/session/wallet/connect" && method == http.MethodPost:
		return domain.AuditActionConnectWallet, "wallet"
	case path == "/api/v1/session/view" && method == http.MethodPut:
		return domain.AuditActionSelectView, "view"
	case path == "/api/v1/session/draft" && method == http.MethodPatch:
		return domain.AuditActionUpdateDraft, "draft"
	case path == "/api/v1/session/draft/submit" && method == http.MethodPost:
		return domain.AuditActionSubmitDraft, "draft"
	}
	return "", ""
}
