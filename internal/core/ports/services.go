package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"greenfund-demo/internal/core/domain"

	"github.com/google/uuid"
)

// --- Engine Ports (Simulation) ---

// LoanDemoEngine owns the simulation state of one demo session.
type LoanDemoEngine interface {
	// Commands
	RequestConnect() bool
	SelectView(view domain.ViewSelection)
	UpdateDraftAmount(text string)
	UpdateDraftDescription(text string)
	SubmitDraft() (*domain.LoanRecord, error)
	Close()

	// Queries
	SessionID() uuid.UUID
	WalletState() domain.WalletState
	CurrentView() domain.ViewSelection
	Draft() domain.LoanApplicationDraft
	ListLoans() []domain.LoanRecord
	AggregateStats() domain.AggregateStats
	ImpactStats() domain.ImpactStats
	StatusPresentation(status string) domain.StatusPresentation
	Snapshot() domain.SessionSnapshot

	// Notifications
	Subscribe() (SubscriptionID, <-chan domain.Notification)
	Unsubscribe(id SubscriptionID)
}

// SubscriptionID identifies a notification subscriber.
type SubscriptionID string

// Notifier receives notifications emitted by engine commands.
type Notifier interface {
	Publish(n domain.Notification)
}

// StatsProvider computes dashboard statistics for a registry.
type StatsProvider interface {
	Aggregate(loans []domain.LoanRecord) domain.AggregateStats
	Impact(loans []domain.LoanRecord) domain.ImpactStats
}

// AmountPolicy decides whether a non-blank draft amount is acceptable.
type AmountPolicy interface {
	Check(amount string) error
}

// Timer is a handle to a scheduled continuation.
type Timer interface {
	// Stop cancels the continuation. Returns false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs f once after d on its own goroutine.
// Implementations must never invoke f synchronously from AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// --- Session Ports ---

// SessionService creates demo sessions and resolves them by id.
type SessionService interface {
	Create(ctx context.Context) (*SessionGrant, error)
	Get(ctx context.Context, id uuid.UUID) (LoanDemoEngine, error)
	Close(ctx context.Context, id uuid.UUID) error
	Count() int
}

// SessionGrant is returned once when a session is created.
type SessionGrant struct {
	Session domain.Session
	Token   string
	Engine  LoanDemoEngine
}

// TokenService handles session JWT operations.
type TokenService interface {
	Generate(sessionID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	SessionID uuid.UUID
}

// AuditService records dispatched demo commands and reads them back.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.AuditLog, error)
}
