package dto

import (
	"encoding/json"
	"time"

	"greenfund-demo/internal/core/domain"

	"github.com/shopspring/decimal"
)

func NewWalletResponse(w domain.WalletState) WalletResponse {
	resp := WalletResponse{Status: string(w.Status())}
	if addr, ok := w.Address(); ok {
		resp.Address = &addr
		resp.DisplayAddress = w.DisplayAddress()
	}
	if bal, currency, ok := w.Balance(); ok {
		s := bal.String()
		resp.Balance = &s
		resp.Currency = currency
	}
	return resp
}

func NewViewResponse(v domain.ViewSelection) ViewResponse {
	resp := ViewResponse{View: string(v), Label: v.Label()}
	for _, opt := range domain.Views() {
		resp.Views = append(resp.Views, ViewOption{View: string(opt), Label: opt.Label()})
	}
	return resp
}

func NewDraftResponse(d domain.LoanApplicationDraft) DraftResponse {
	return DraftResponse{
		Amount:      d.Amount,
		Description: d.Description,
		Complete:    d.IsComplete(),
	}
}

func NewSessionResponse(s domain.SessionSnapshot) SessionResponse {
	return SessionResponse{
		SessionID: s.SessionID.String(),
		Wallet:    NewWalletResponse(s.Wallet),
		View:      NewViewResponse(s.View),
		Draft:     NewDraftResponse(s.Draft),
		LoanCount: s.LoanCount,
	}
}

func NewStatusPresentationResponse(status string, p domain.StatusPresentation) StatusPresentationResponse {
	return StatusPresentationResponse{
		Status:     status,
		ColorClass: p.ColorClass,
		IconKind:   string(p.IconKind),
	}
}

func NewLoanResponse(l domain.LoanRecord) LoanResponse {
	return LoanResponse{
		ID:                       l.ID,
		Borrower:                 l.Borrower,
		Amount:                   l.Amount,
		Purpose:                  l.Purpose,
		Status:                   string(l.Status),
		RepaymentProgressPercent: l.RepaymentProgressPercent,
		EnvironmentalImpact:      l.EnvironmentalImpact,
		Presentation:             NewStatusPresentationResponse(string(l.Status), domain.PresentStatus(string(l.Status))),
	}
}

func NewLoanListResponse(loans []domain.LoanRecord) LoanListResponse {
	items := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		items = append(items, NewLoanResponse(l))
	}
	return LoanListResponse{Items: items, Total: len(items)}
}

func NewStatsResponse(s domain.AggregateStats) StatsResponse {
	return StatsResponse{
		TotalLoans:         s.TotalLoans,
		TotalFunded:        s.TotalFunded.String(),
		Currency:           s.Currency,
		CO2SavedTons:       s.CO2SavedTons.String(),
		SuccessRatePercent: s.SuccessRatePercent.String(),
		Display:            s.Display(),
	}
}

func NewImpactResponse(s domain.ImpactStats) ImpactResponse {
	return ImpactResponse{
		CO2ReducedTons: s.CO2ReducedTons.String(),
		SolarProjects:  s.SolarProjects,
		EVsPurchased:   s.EVsPurchased,
		Display: ImpactDisplay{
			CO2Reduced:    domain.FormatGrouped(s.CO2ReducedTons) + " tons",
			SolarProjects: domain.FormatGrouped(decimal.NewFromInt(s.SolarProjects)),
			EVsPurchased:  domain.FormatGrouped(decimal.NewFromInt(s.EVsPurchased)),
		},
	}
}

func NewAuditLogResponse(l domain.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:           l.ID.String(),
		Action:       string(l.Action),
		ResourceType: l.ResourceType,
		ResourceID:   l.ResourceID,
		IPAddress:    l.IPAddress,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.Details != "" && json.Valid([]byte(l.Details)) {
		resp.Details = json.RawMessage(l.Details)
	}
	return resp
}

func NewAuditLogListResponse(logs []domain.AuditLog) AuditLogListResponse {
	items := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, NewAuditLogResponse(l))
	}
	return AuditLogListResponse{Items: items, Total: len(items)}
}
