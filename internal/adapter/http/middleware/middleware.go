package middleware

import (
	"net/http"
	"strings"
	"time"

	"greenfund-demo/internal/core/ports"
	"greenfund-demo/pkg/apperror"
	"greenfund-demo/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderRequestID carries the request correlation id.
	HeaderRequestID = "X-Request-ID"

	// QueryAccessToken carries the session token for clients that cannot set
	// headers (EventSource, WebSocket).
	QueryAccessToken = "access_token"

	// Context keys
	CtxRequestID = "request_id"
	CtxSessionID = "session_id"
	CtxEngine    = "engine"
)

// SessionAuth validates the session token and resolves the session's engine.
// The token is read from "Authorization: Bearer" or the access_token query
// parameter.
func SessionAuth(tokenSvc ports.TokenService, sessions ports.SessionService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		engine, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(CtxSessionID, claims.SessionID)
		c.Set(CtxEngine, engine)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") && len(authHeader) > len("Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return c.Query(QueryAccessToken)
}

// EngineFrom returns the engine resolved by SessionAuth.
func EngineFrom(c *gin.Context) (ports.LoanDemoEngine, bool) {
	v, ok := c.Get(CtxEngine)
	if !ok {
		return nil, false
	}
	engine, ok := v.(ports.LoanDemoEngine)
	return engine, ok
}

// SessionIDFrom returns the session id resolved by SessionAuth.
func SessionIDFrom(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxSessionID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// RequestID propagates or generates a request correlation id.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		if id, ok := SessionIDFrom(c); ok {
			event = event.Str("session_id", id.String())
		}

		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
