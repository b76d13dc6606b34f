package handler

import (
	"net/http"
	"time"

	"greenfund-demo/internal/adapter/http/middleware"
	"greenfund-demo/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	defaultHeartbeat = 15 * time.Second
	wsWriteWait      = 5 * time.Second
)

// NotificationHandler streams engine notifications over SSE or WebSocket.
// Each stream is a live subscription: nothing emitted before it opened is
// replayed.
type NotificationHandler struct {
	sessions  ports.SessionService
	log       zerolog.Logger
	heartbeat time.Duration
	upgrader  websocket.Upgrader
}

// NewNotificationHandler creates a new NotificationHandler. A non-positive
// heartbeat selects the default.
func NewNotificationHandler(sessions ports.SessionService, heartbeat time.Duration, log zerolog.Logger) *NotificationHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &NotificationHandler{
		sessions:  sessions,
		log:       log,
		heartbeat: heartbeat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Sockets authenticate with the session token, not cookies.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Stream handles GET /api/v1/session/notifications/stream (Server-Sent Events).
func (h *NotificationHandler) Stream(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	sessionID, _ := middleware.SessionIDFrom(c)

	subID, ch := engine.Subscribe()
	defer engine.Unsubscribe(subID)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("ready", gin.H{"session_id": sessionID.String()})
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				c.SSEvent("closed", gin.H{"session_id": sessionID.String()})
				c.Writer.Flush()
				return
			}
			c.SSEvent("notification", n)
			c.Writer.Flush()
		case <-ticker.C:
			// Keep the session alive while someone is listening.
			if _, err := h.sessions.Get(ctx, sessionID); err != nil {
				return
			}
			c.SSEvent("ping", gin.H{"time": time.Now().UTC().Format(time.RFC3339)})
			c.Writer.Flush()
		}
	}
}

// WebSocket handles GET /api/v1/session/notifications/ws.
func (h *NotificationHandler) WebSocket(c *gin.Context) {
	engine, ok := requireEngine(c)
	if !ok {
		return
	}
	sessionID, _ := middleware.SessionIDFrom(c)
	log := h.log.With().Str("session_id", sessionID.String()).Logger()

	subID, ch := engine.Subscribe()
	defer engine.Unsubscribe(subID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	log.Debug().Msg("websocket client connected")

	// Drain client frames so control messages are processed and a close is noticed.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-gone:
			log.Debug().Msg("websocket client disconnected")
			return
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"),
					time.Now().Add(wsWriteWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(n); err != nil {
				log.Warn().Err(err).Msg("websocket write failed")
				return
			}
		case <-ticker.C:
			if _, err := h.sessions.Get(ctx, sessionID); err != nil {
				return
			}
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
