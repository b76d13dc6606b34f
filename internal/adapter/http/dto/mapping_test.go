package dto

import (
	"testing"

	"greenfund-demo/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWalletResponse(t *testing.T) {
	disconnected := NewWalletResponse(domain.DisconnectedWallet())
	assert.Equal(t, "DISCONNECTED", disconnected.Status)
	assert.Nil(t, disconnected.Address)
	assert.Nil(t, disconnected.Balance)

	connecting := NewWalletResponse(domain.ConnectingWallet())
	assert.Equal(t, "CONNECTING", connecting.Status)
	assert.Nil(t, connecting.Address)

	connected := NewWalletResponse(domain.ConnectedWallet(
		"0x742d35cc6634c0532925a3b844bc9e7595f08f1a", decimal.RequireFromString("5.24"), "ETH"))
	assert.Equal(t, "CONNECTED", connected.Status)
	require.NotNil(t, connected.Address)
	assert.Equal(t, "0x742d35cc6634c0532925a3b844bc9e7595f08f1a", *connected.Address)
	assert.Equal(t, "0x742d...8f1a", connected.DisplayAddress)
	require.NotNil(t, connected.Balance)
	assert.Equal(t, "5.24", *connected.Balance)
	assert.Equal(t, "ETH", connected.Currency)
}

func TestNewViewResponse(t *testing.T) {
	v := NewViewResponse(domain.ViewImpact)
	assert.Equal(t, "impact", v.View)
	assert.Equal(t, "Environmental Impact", v.Label)
	require.Len(t, v.Views, 3)
	assert.Equal(t, "dashboard", v.Views[0].View)
}

func TestNewSessionResponse(t *testing.T) {
	id := uuid.New()
	s := NewSessionResponse(domain.SessionSnapshot{
		SessionID: id,
		Wallet:    domain.DisconnectedWallet(),
		View:      domain.ViewApply,
		Draft:     domain.LoanApplicationDraft{Amount: "1", Description: " "},
		LoanCount: 3,
	})
	assert.Equal(t, id.String(), s.SessionID)
	assert.Equal(t, "apply", s.View.View)
	assert.False(t, s.Draft.Complete)
	assert.Equal(t, 3, s.LoanCount)
}

func TestNewLoanListResponse(t *testing.T) {
	list := NewLoanListResponse(domain.SeedLoans())
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "TrendingUp", list.Items[0].Presentation.IconKind)
	assert.Equal(t, "Clock", list.Items[1].Presentation.IconKind)
	assert.Equal(t, "CheckCircle", list.Items[2].Presentation.IconKind)

	empty := NewLoanListResponse(nil)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.Total)
}

func TestNewStatsResponse(t *testing.T) {
	s := NewStatsResponse(domain.AggregateStats{
		TotalLoans:         156,
		TotalFunded:        decimal.RequireFromString("847.6"),
		Currency:           "ETH",
		CO2SavedTons:       decimal.NewFromInt(1234),
		SuccessRatePercent: decimal.RequireFromString("94.2"),
	})
	assert.Equal(t, "847.6", s.TotalFunded)
	assert.Equal(t, "1,234 tons", s.Display.CO2Saved)
	assert.Equal(t, "94.2%", s.Display.SuccessRate)
}

func TestNewImpactResponse(t *testing.T) {
	i := NewImpactResponse(domain.ImpactStats{
		CO2ReducedTons: decimal.NewFromInt(1234),
		SolarProjects:  89,
		EVsPurchased:   245,
	})
	assert.Equal(t, "1234", i.CO2ReducedTons)
	assert.Equal(t, "1,234 tons", i.Display.CO2Reduced)
	assert.Equal(t, "89", i.Display.SolarProjects)
	assert.Equal(t, "245", i.Display.EVsPurchased)
}
