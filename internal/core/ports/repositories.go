package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"greenfund-demo/internal/core/domain"

	"github.com/google/uuid"
)

// AuditRepository defines persistence operations for the command audit trail.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.AuditLog, error)
}

// RateLimiter is a fixed-window request counter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
