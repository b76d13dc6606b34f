package handler

import (
	"time"

	"greenfund-demo/internal/adapter/http/middleware"
	"greenfund-demo/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	TokenSvc       ports.TokenService
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	StreamPing     time.Duration      // 0 = default heartbeat
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10)) // 64 KB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (pings PostgreSQL and Redis when enabled)
	r.GET("/health", HealthCheck(deps.SessionSvc, deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if a limiter is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no session) ---
	sessionHandler := NewSessionHandler(deps.SessionSvc)
	v1.POST("/sessions", rl("sessions_create"), sessionHandler.Create)
	v1.GET("/status-presentation/:status", rl("queries"), StatusPresentation)

	// --- Session routes (bearer token or access_token query) ---
	auth := middleware.SessionAuth(deps.TokenSvc, deps.SessionSvc, deps.Logger)
	engineHandler := NewEngineHandler()
	notificationHandler := NewNotificationHandler(deps.SessionSvc, deps.StreamPing, deps.Logger)

	session := v1.Group("/session", auth)
	{
		session.GET("", rl("queries"), sessionHandler.Get)
		session.DELETE("", rl("commands"), sessionHandler.Close)

		session.GET("/wallet", rl("queries"), engineHandler.GetWallet)
		session.POST("/wallet/connect", rl("commands"), engineHandler.ConnectWallet)

		session.GET("/view", rl("queries"), engineHandler.GetView)
		session.PUT("/view", rl("commands"), engineHandler.SelectView)

		session.GET("/draft", rl("queries"), engineHandler.GetDraft)
		session.PATCH("/draft", rl("commands"), engineHandler.UpdateDraft)
		session.POST("/draft/submit", rl("commands"), engineHandler.SubmitDraft)

		session.GET("/loans", rl("queries"), engineHandler.ListLoans)
		session.GET("/stats", rl("queries"), engineHandler.GetStats)
		session.GET("/impact", rl("queries"), engineHandler.GetImpact)

		session.GET("/notifications/stream", rl("streams"), notificationHandler.Stream)
		session.GET("/notifications/ws", rl("streams"), notificationHandler.WebSocket)

		if deps.AuditSvc != nil {
			session.GET("/audit", rl("queries"), NewAuditHandler(deps.AuditSvc).List)
		}
	}

	return r
}
