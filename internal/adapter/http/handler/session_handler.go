package handler

import (
	"greenfund-demo/internal/adapter/http/dto"
	"greenfund-demo/internal/adapter/http/middleware"
	"greenfund-demo/internal/core/ports"
	"greenfund-demo/pkg/apperror"
	"greenfund-demo/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles the demo session lifecycle.
type SessionHandler struct {
	sessions ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create handles POST /api/v1/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	grant, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxSessionID, grant.Session.ID)

	response.Created(c, dto.CreateSessionResponse{
		SessionID: grant.Session.ID.String(),
		Token:     grant.Token,
		ExpiresAt: grant.Session.ExpiresAt.Unix(),
		Session:   dto.NewSessionResponse(grant.Engine.Snapshot()),
	})
}

// Get handles GET /api/v1/session.
func (h *SessionHandler) Get(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewSessionResponse(engine.Snapshot()))
}

// Close handles DELETE /api/v1/session.
func (h *SessionHandler) Close(c *gin.Context) {
	id, ok := middleware.SessionIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrSessionNotFound())
		return
	}
	if err := h.sessions.Close(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"session_id": id.String(), "closed": true})
}

// requireEngine returns the session engine or writes SESS_001.
func requireEngine(c *gin.Context) (ports.LoanDemoEngine, bool) {
	engine, ok := middleware.EngineFrom(c)
	if !ok {
		response.Error(c, apperror.ErrSessionNotFound())
		return nil, false
	}
	return engine, true
}
