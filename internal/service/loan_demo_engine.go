package service

import (
	"errors"
	"sync"
	"time"

	"greenfund-demo/internal/core/domain"
	"greenfund-demo/internal/core/ports"
	"greenfund-demo/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Notification texts shown by the demo page.
const (
	TitleWalletConnected      = "Wallet Connected"
	MessageWalletConnected    = "MetaMask wallet connected successfully!"
	TitleMissingInformation   = "Missing Information"
	MessageMissingInformation = "Please fill in all required fields."
	TitleApplicationSubmitted = "Application Submitted"
	MessageApplicationSubmit  = "Your green loan application has been submitted to the blockchain!"
	TitleInvalidAmount        = "Invalid Amount"
	TitleWalletNotConnected   = "Wallet Not Connected"
	MessageWalletNotConnected = "Connect your wallet before submitting an application."
)

// EngineConfig holds the simulation constants of an engine.
type EngineConfig struct {
	ConnectDelay       time.Duration
	WalletAddress      string
	WalletBalance      decimal.Decimal
	Currency           string
	AppendOnSubmit     bool
	NotificationBuffer int
	Seed               []domain.LoanRecord // nil = domain.SeedLoans()
}

// EngineDeps holds the collaborators of an engine.
type EngineDeps struct {
	Scheduler    ports.Scheduler
	Stats        ports.StatsProvider
	AmountPolicy ports.AmountPolicy // nil = lenient
	Logger       zerolog.Logger
}

// loanDemoEngine implements ports.LoanDemoEngine.
//
// Commands are serialised by mu because the connect continuation fires on a
// timer goroutine. Notifications are published after mu is released.
type loanDemoEngine struct {
	id   uuid.UUID
	cfg  EngineConfig
	deps EngineDeps
	hub  *NotificationHub
	log  zerolog.Logger

	mu       sync.Mutex
	wallet   domain.WalletState
	view     domain.ViewSelection
	draft    domain.LoanApplicationDraft
	registry *LoanRegistry
	pending  ports.Timer
	closed   bool
}

// NewLoanDemoEngine creates an engine in its initial state: wallet
// disconnected, dashboard selected, empty draft, seeded registry.
func NewLoanDemoEngine(sessionID uuid.UUID, cfg EngineConfig, deps EngineDeps) ports.LoanDemoEngine {
	if deps.AmountPolicy == nil {
		deps.AmountPolicy = LenientAmountPolicy{}
	}
	seed := cfg.Seed
	if seed == nil {
		seed = domain.SeedLoans()
	}
	log := deps.Logger.With().Str("session_id", sessionID.String()).Logger()

	return &loanDemoEngine{
		id:       sessionID,
		cfg:      cfg,
		deps:     deps,
		hub:      NewNotificationHub(cfg.NotificationBuffer, log),
		log:      log,
		wallet:   domain.DisconnectedWallet(),
		view:     domain.DefaultView,
		registry: NewLoanRegistry(sessionID, seed),
	}
}

// SessionID returns the id of the session this engine serves.
func (e *loanDemoEngine) SessionID() uuid.UUID {
	return e.id
}

// RequestConnect starts the simulated wallet connection. It returns false
// and does nothing unless the wallet is disconnected.
func (e *loanDemoEngine) RequestConnect() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.wallet.Status() != domain.WalletStatusDisconnected {
		return false
	}

	e.wallet = domain.ConnectingWallet()
	e.pending = e.deps.Scheduler.AfterFunc(e.cfg.ConnectDelay, e.completeConnect)

	e.log.Debug().Dur("delay", e.cfg.ConnectDelay).Msg("wallet connecting")
	return true
}

// completeConnect is the continuation scheduled by RequestConnect.
func (e *loanDemoEngine) completeConnect() {
	e.mu.Lock()
	if e.closed || e.wallet.Status() != domain.WalletStatusConnecting {
		e.mu.Unlock()
		return
	}
	e.wallet = domain.ConnectedWallet(e.cfg.WalletAddress, e.cfg.WalletBalance, e.cfg.Currency)
	e.pending = nil
	e.mu.Unlock()

	e.log.Debug().Str("address", domain.TruncateAddress(e.cfg.WalletAddress)).Msg("wallet connected")
	e.notify(domain.NotificationInfo, TitleWalletConnected, MessageWalletConnected)
}

// SelectView replaces the active tab.
func (e *loanDemoEngine) SelectView(view domain.ViewSelection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.view = view
}

// UpdateDraftAmount stores the raw amount text.
func (e *loanDemoEngine) UpdateDraftAmount(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.draft.Amount = text
}

// UpdateDraftDescription stores the raw description text.
func (e *loanDemoEngine) UpdateDraftDescription(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.draft.Description = text
}

// SubmitDraft validates and submits the current draft.
//
// On failure the draft is left untouched and an Error notification is
// emitted. On success the draft is cleared and an Info notification is
// emitted. The returned record is non-nil only when AppendOnSubmit is set.
func (e *loanDemoEngine) SubmitDraft() (*domain.LoanRecord, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, apperror.ErrSessionClosed()
	}

	draft := e.draft
	if !draft.IsComplete() {
		e.mu.Unlock()
		e.notify(domain.NotificationError, TitleMissingInformation, MessageMissingInformation)
		return nil, apperror.ErrMissingFields()
	}

	if err := e.deps.AmountPolicy.Check(draft.Amount); err != nil {
		e.mu.Unlock()
		msg := err.Error()
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		e.notify(domain.NotificationError, TitleInvalidAmount, msg)
		return nil, err
	}

	var record *domain.LoanRecord
	if e.cfg.AppendOnSubmit {
		address, ok := e.wallet.Address()
		if !ok {
			e.mu.Unlock()
			e.notify(domain.NotificationError, TitleWalletNotConnected, MessageWalletNotConnected)
			return nil, apperror.ErrWalletNotConnected()
		}
		rec := e.registry.NewPendingRecord(address, draft.Amount, e.cfg.Currency, draft.Description)
		if err := e.registry.Append(rec); err != nil {
			e.mu.Unlock()
			return nil, apperror.InternalError(err)
		}
		record = &rec
	}

	e.draft = domain.LoanApplicationDraft{}
	e.mu.Unlock()

	ev := e.log.Debug().Bool("appended", record != nil)
	if record != nil {
		ev = ev.Str("loan_id", record.ID)
	}
	ev.Msg("loan application submitted")

	e.notify(domain.NotificationInfo, TitleApplicationSubmitted, MessageApplicationSubmit)
	return record, nil
}

// Close cancels a pending connection and disconnects notification
// subscribers. Commands issued afterwards are ignored.
func (e *loanDemoEngine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	e.mu.Unlock()

	e.hub.Close()
	e.log.Debug().Msg("engine closed")
}

// WalletState returns the current wallet connection.
func (e *loanDemoEngine) WalletState() domain.WalletState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wallet
}

// CurrentView returns the active tab.
func (e *loanDemoEngine) CurrentView() domain.ViewSelection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}

// Draft returns the current application draft.
func (e *loanDemoEngine) Draft() domain.LoanApplicationDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// ListLoans returns the registry in insertion order.
func (e *loanDemoEngine) ListLoans() []domain.LoanRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.List()
}

// AggregateStats returns the dashboard summary.
func (e *loanDemoEngine) AggregateStats() domain.AggregateStats {
	return e.deps.Stats.Aggregate(e.ListLoans())
}

// ImpactStats returns the environmental impact figures.
func (e *loanDemoEngine) ImpactStats() domain.ImpactStats {
	return e.deps.Stats.Impact(e.ListLoans())
}

// StatusPresentation maps a status to its badge styling.
func (e *loanDemoEngine) StatusPresentation(status string) domain.StatusPresentation {
	return domain.PresentStatus(status)
}

// Snapshot returns wallet, view and draft read under one lock.
func (e *loanDemoEngine) Snapshot() domain.SessionSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.SessionSnapshot{
		SessionID: e.id,
		Wallet:    e.wallet,
		View:      e.view,
		Draft:     e.draft,
		LoanCount: e.registry.Len(),
	}
}

// Subscribe registers a notification subscriber.
func (e *loanDemoEngine) Subscribe() (ports.SubscriptionID, <-chan domain.Notification) {
	return e.hub.Subscribe()
}

// Unsubscribe removes a notification subscriber.
func (e *loanDemoEngine) Unsubscribe(id ports.SubscriptionID) {
	e.hub.Unsubscribe(id)
}

func (e *loanDemoEngine) notify(kind domain.NotificationKind, title, message string) {
	e.hub.Publish(domain.NewNotification(e.id, kind, title, message))
}
