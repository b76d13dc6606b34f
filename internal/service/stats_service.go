package service

import (
	"fmt"
	"strings"
	"unicode"

	"greenfund-demo/config"
	"greenfund-demo/internal/core/domain"
	"greenfund-demo/internal/core/ports"

	"github.com/shopspring/decimal"
)

const (
	StatsModeFixed   = "fixed"
	StatsModeDerived = "derived"
)

// FixedStatsProvider returns configured constants regardless of the registry.
type FixedStatsProvider struct {
	aggregate domain.AggregateStats
	impact    domain.ImpactStats
}

// NewFixedStatsProvider parses the configured constants.
func NewFixedStatsProvider(cfg config.StatsConfig, currency string) (*FixedStatsProvider, error) {
	funded, err := decimal.NewFromString(cfg.TotalFunded)
	if err != nil {
		return nil, fmt.Errorf("parsing stats.total_funded: %w", err)
	}
	co2, err := decimal.NewFromString(cfg.CO2SavedTons)
	if err != nil {
		return nil, fmt.Errorf("parsing stats.co2_saved_tons: %w", err)
	}
	rate, err := decimal.NewFromString(cfg.SuccessRatePercent)
	if err != nil {
		return nil, fmt.Errorf("parsing stats.success_rate_percent: %w", err)
	}

	return &FixedStatsProvider{
		aggregate: domain.AggregateStats{
			TotalLoans:         cfg.TotalLoans,
			TotalFunded:        funded,
			Currency:           currency,
			CO2SavedTons:       co2,
			SuccessRatePercent: rate,
		},
		impact: domain.ImpactStats{
			CO2ReducedTons: co2,
			SolarProjects:  cfg.SolarProjects,
			EVsPurchased:   cfg.EVsPurchased,
		},
	}, nil
}

// Aggregate ignores loans and returns the configured dashboard figures.
func (p *FixedStatsProvider) Aggregate([]domain.LoanRecord) domain.AggregateStats {
	return p.aggregate
}

// Impact ignores loans and returns the configured impact figures.
func (p *FixedStatsProvider) Impact([]domain.LoanRecord) domain.ImpactStats {
	return p.impact
}

// RegistryStatsProvider computes the figures from the loan registry.
//
//   - total loans: every record
//   - total funded: amounts of Active and Completed loans
//   - CO2 saved: impact tons of Active and Completed loans (Pending impact is projected)
//   - success rate: Completed share of funded loans, one decimal place
//
// Records whose amount or impact text has no leading number contribute zero.
type RegistryStatsProvider struct {
	currency string
}

// NewRegistryStatsProvider creates a provider labelling totals with currency.
func NewRegistryStatsProvider(currency string) *RegistryStatsProvider {
	return &RegistryStatsProvider{currency: currency}
}

// Aggregate derives the dashboard figures from loans.
func (p *RegistryStatsProvider) Aggregate(loans []domain.LoanRecord) domain.AggregateStats {
	stats := domain.AggregateStats{
		TotalLoans:         int64(len(loans)),
		TotalFunded:        decimal.Zero,
		Currency:           p.currency,
		CO2SavedTons:       decimal.Zero,
		SuccessRatePercent: decimal.Zero,
	}

	var funded, completed int64
	for _, l := range loans {
		if !l.Status.IsFunded() {
			continue
		}
		funded++
		if l.Status == domain.LoanStatusCompleted {
			completed++
		}
		if amt, err := l.AmountValue(); err == nil {
			stats.TotalFunded = stats.TotalFunded.Add(amt)
		}
		if tons, err := l.ImpactTons(); err == nil {
			stats.CO2SavedTons = stats.CO2SavedTons.Add(tons)
		}
	}

	if funded > 0 {
		stats.SuccessRatePercent = decimal.NewFromInt(completed).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(funded)).
			Round(1)
	}
	return stats
}

// Impact derives the impact tab figures from funded loans.
func (p *RegistryStatsProvider) Impact(loans []domain.LoanRecord) domain.ImpactStats {
	impact := domain.ImpactStats{CO2ReducedTons: decimal.Zero}
	for _, l := range loans {
		if !l.Status.IsFunded() {
			continue
		}
		if tons, err := l.ImpactTons(); err == nil {
			impact.CO2ReducedTons = impact.CO2ReducedTons.Add(tons)
		}
		purpose := strings.ToLower(l.Purpose)
		if strings.Contains(purpose, "solar") {
			impact.SolarProjects++
		}
		if isEVPurpose(purpose) {
			impact.EVsPurchased++
		}
	}
	return impact
}

// isEVPurpose matches "electric vehicle" or a standalone "ev"/"evs" word in a
// lower-cased purpose.
func isEVPurpose(purpose string) bool {
	if strings.Contains(purpose, "electric vehicle") {
		return true
	}
	words := strings.FieldsFunc(purpose, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if w == "ev" || w == "evs" {
			return true
		}
	}
	return false
}

// NewStatsProvider picks the provider for the configured stats mode.
func NewStatsProvider(mode string, cfg config.StatsConfig, currency string) (ports.StatsProvider, error) {
	switch mode {
	case StatsModeFixed, "":
		p, err := NewFixedStatsProvider(cfg, currency)
		if err != nil {
			return nil, err
		}
		return p, nil
	case StatsModeDerived:
		return NewRegistryStatsProvider(currency), nil
	default:
		return nil, fmt.Errorf("unknown stats mode %q", mode)
	}
}
