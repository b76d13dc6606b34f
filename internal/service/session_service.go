package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"greenfund-demo/config"
	"greenfund-demo/internal/core/domain"
	"greenfund-demo/internal/core/ports"
	"greenfund-demo/pkg/apperror"
	"greenfund-demo/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// EngineFactory builds the engine serving a new session.
type EngineFactory func(sessionID uuid.UUID) ports.LoanDemoEngine

// NewEngineFactory resolves the demo configuration once and returns a
// factory producing identically configured engines.
func NewEngineFactory(demo config.DemoConfig, stats config.StatsConfig, sched ports.Scheduler, log zerolog.Logger) (EngineFactory, error) {
	balance, err := decimal.NewFromString(demo.WalletBalance)
	if err != nil {
		return nil, fmt.Errorf("parsing demo.wallet_balance: %w", err)
	}
	if !balance.IsPositive() {
		return nil, fmt.Errorf("demo.wallet_balance must be positive, got %s", balance)
	}
	provider, err := NewStatsProvider(demo.StatsMode, stats, demo.Currency)
	if err != nil {
		return nil, err
	}

	cfg := EngineConfig{
		ConnectDelay:       demo.ConnectDelay,
		WalletAddress:      demo.WalletAddress,
		WalletBalance:      balance,
		Currency:           demo.Currency,
		AppendOnSubmit:     demo.AppendOnSubmit,
		NotificationBuffer: demo.NotificationBuffer,
	}
	deps := EngineDeps{
		Scheduler:    sched,
		Stats:        provider,
		AmountPolicy: NewAmountPolicy(demo.StrictAmount),
		Logger:       logger.Component(log, "engine"),
	}

	return func(sessionID uuid.UUID) ports.LoanDemoEngine {
		return NewLoanDemoEngine(sessionID, cfg, deps)
	}, nil
}

type sessionEntry struct {
	session  domain.Session
	engine   ports.LoanDemoEngine
	lastSeen time.Time
}

// SessionManager implements ports.SessionService with an in-memory table.
// Sessions idle for longer than the TTL are closed by Sweep.
type SessionManager struct {
	tokens    ports.TokenService
	newEngine EngineFactory
	ttl       time.Duration
	log       zerolog.Logger
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
}

// NewSessionManager creates an empty session table.
func NewSessionManager(tokens ports.TokenService, newEngine EngineFactory, ttl time.Duration, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		tokens:    tokens,
		newEngine: newEngine,
		ttl:       ttl,
		log:       log,
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*sessionEntry),
	}
}

// Create starts a new engine and issues its session token.
func (m *SessionManager) Create(ctx context.Context) (*ports.SessionGrant, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating session id: %w", err))
	}

	token, expiresAt, err := m.tokens.Generate(id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	now := m.now()
	engine := m.newEngine(id)
	entry := &sessionEntry{
		session:  domain.Session{ID: id, CreatedAt: now, ExpiresAt: expiresAt},
		engine:   engine,
		lastSeen: now,
	}

	m.mu.Lock()
	m.sessions[id] = entry
	total := len(m.sessions)
	m.mu.Unlock()

	m.log.Info().
		Str("session_id", id.String()).
		Int("active_sessions", total).
		Msg("session created")

	return &ports.SessionGrant{Session: entry.session, Token: token, Engine: engine}, nil
}

// Get returns the engine of a live session and marks it as recently used.
func (m *SessionManager) Get(ctx context.Context, id uuid.UUID) (ports.LoanDemoEngine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound()
	}
	entry.lastSeen = m.now()
	return entry.engine, nil
}

// Close removes a session and closes its engine.
func (m *SessionManager) Close(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return apperror.ErrSessionNotFound()
	}
	entry.engine.Close()
	m.log.Info().Str("session_id", id.String()).Msg("session closed")
	return nil
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than the TTL and returns how many
// were closed. A non-positive TTL disables expiry.
func (m *SessionManager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)

	var expired []*sessionEntry
	m.mu.Lock()
	for id, entry := range m.sessions {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, entry := range expired {
		entry.engine.Close()
		m.log.Info().Str("session_id", entry.session.ID.String()).Msg("session expired")
	}
	return len(expired)
}

// Run sweeps expired sessions every interval until ctx is cancelled, then
// closes every remaining session.
func (m *SessionManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.CloseAll()
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Debug().Int("expired", n).Int("active_sessions", m.Count()).Msg("session sweep")
			}
		}
	}
}

// CloseAll closes every session.
func (m *SessionManager) CloseAll() {
	m.mu.Lock()
	entries := make([]*sessionEntry, 0, len(m.sessions))
	for id, entry := range m.sessions {
		entries = append(entries, entry)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, entry := range entries {
		entry.engine.Close()
	}
}
