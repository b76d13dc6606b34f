package dto

import (
	"encoding/json"

	"greenfund-demo/internal/core/domain"
)

// CreateSessionResponse is returned once when a demo session is created.
type CreateSessionResponse struct {
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expires_at"` // Unix timestamp
	Session   SessionResponse `json:"session"`
}

// SessionResponse is a consistent read of the session's user-facing state.
type SessionResponse struct {
	SessionID string         `json:"session_id"`
	Wallet    WalletResponse `json:"wallet"`
	View      ViewResponse   `json:"view"`
	Draft     DraftResponse  `json:"draft"`
	LoanCount int            `json:"loan_count"`
}

// WalletResponse describes the wallet connection.
// Address and balance are present only while connected.
type WalletResponse struct {
	Status         string  `json:"status"`
	Address        *string `json:"address,omitempty"`
	DisplayAddress string  `json:"display_address,omitempty"`
	Balance        *string `json:"balance,omitempty"`
	Currency       string  `json:"currency,omitempty"`
}

// ConnectResponse is returned by the connect command.
type ConnectResponse struct {
	Started bool           `json:"started"`
	Wallet  WalletResponse `json:"wallet"`
}

// SelectViewRequest is the request body for switching tabs.
type SelectViewRequest struct {
	View string `json:"view" binding:"required,view_name"`
}

// ViewOption is one selectable tab.
type ViewOption struct {
	View  string `json:"view"`
	Label string `json:"label"`
}

// ViewResponse describes the active tab.
type ViewResponse struct {
	View  string       `json:"view"`
	Label string       `json:"label"`
	Views []ViewOption `json:"views,omitempty"`
}

// UpdateDraftRequest carries the edited draft fields. Absent fields are left
// untouched. Values are stored verbatim; the length caps only bound request
// size and say nothing about whether the amount is a number.
type UpdateDraftRequest struct {
	Amount      *string `json:"amount" binding:"omitempty,max=64"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// DraftResponse describes the application draft.
type DraftResponse struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// SubmitResponse is returned by a successful submission.
type SubmitResponse struct {
	Submitted bool          `json:"submitted"`
	Loan      *LoanResponse `json:"loan,omitempty"`
	Draft     DraftResponse `json:"draft"`
}

// StatusPresentationResponse is the badge styling of a loan status.
type StatusPresentationResponse struct {
	Status     string `json:"status"`
	ColorClass string `json:"color_class"`
	IconKind   string `json:"icon_kind"`
}

// LoanResponse is one registry entry with its badge styling.
type LoanResponse struct {
	ID                       string                     `json:"id"`
	Borrower                 string                     `json:"borrower"`
	Amount                   string                     `json:"amount"`
	Purpose                  string                     `json:"purpose"`
	Status                   string                     `json:"status"`
	RepaymentProgressPercent int                        `json:"repayment_progress_percent"`
	EnvironmentalImpact      string                     `json:"environmental_impact"`
	Presentation             StatusPresentationResponse `json:"presentation"`
}

// LoanListResponse wraps the registry in display order.
type LoanListResponse struct {
	Items []LoanResponse `json:"items"`
	Total int            `json:"total"`
}

// StatsResponse is the dashboard summary, raw and formatted.
type StatsResponse struct {
	TotalLoans         int64               `json:"total_loans"`
	TotalFunded        string              `json:"total_funded"`
	Currency           string              `json:"currency"`
	CO2SavedTons       string              `json:"co2_saved_tons"`
	SuccessRatePercent string              `json:"success_rate_percent"`
	Display            domain.StatsDisplay `json:"display"`
}

// ImpactResponse is the environmental impact tab.
type ImpactResponse struct {
	CO2ReducedTons string        `json:"co2_reduced_tons"`
	SolarProjects  int64         `json:"solar_projects"`
	EVsPurchased   int64         `json:"evs_purchased"`
	Display        ImpactDisplay `json:"display"`
}

// ImpactDisplay is the human-readable rendering of the impact tab.
type ImpactDisplay struct {
	CO2Reduced    string `json:"co2_reduced"`
	SolarProjects string `json:"solar_projects"`
	EVsPurchased  string `json:"evs_purchased"`
}

// AuditLogResponse is one entry of the session's command audit trail.
type AuditLogResponse struct {
	ID           string          `json:"id"`
	Action       string          `json:"action"`
	ResourceType string          `json:"resource_type"`
	ResourceID   string          `json:"resource_id,omitempty"`
	IPAddress    string          `json:"ip_address"`
	Details      json.RawMessage `json:"details,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

// AuditLogListResponse wraps the newest audit entries of a session.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Total int                `json:"total"`
}
