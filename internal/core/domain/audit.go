package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited demo command.
type AuditAction string

const (
	AuditActionCreateSession AuditAction = "CREATE_SESSION"
	AuditActionCloseSession  AuditAction = "CLOSE_SESSION"
	AuditActionConnectWallet AuditAction = "CONNECT_WALLET"
	AuditActionSelectView    AuditAction = "SELECT_VIEW"
	AuditActionUpdateDraft   AuditAction = "UPDATE_DRAFT"
	AuditActionSubmitDraft   AuditAction = "SUBMIT_DRAFT"
)

// AuditLog records a single command dispatched to a demo session.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	SessionID    *uuid.UUID  `json:"session_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
