package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one demo visitor and the engine serving them.
type Session struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionSnapshot is a consistent read of an engine's user-facing state.
type SessionSnapshot struct {
	SessionID uuid.UUID
	Wallet    WalletState
	View      ViewSelection
	Draft     LoanApplicationDraft
	LoanCount int
}
