package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LoanStatus represents the lifecycle state of a green loan.
type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "Pending"
	LoanStatusActive    LoanStatus = "Active"
	LoanStatusCompleted LoanStatus = "Completed"
)

// IsFunded returns true once the loan has left the Pending state.
func (s LoanStatus) IsFunded() bool {
	return s == LoanStatusActive || s == LoanStatusCompleted
}

// LoanRecord is a single entry of the loan registry. Records are values and
// are never mutated after they are appended.
type LoanRecord struct {
	ID                       string     `json:"id"`
	Borrower                 string     `json:"borrower"` // truncated address
	Amount                   string     `json:"amount"`   // e.g. "5.5 ETH"
	Purpose                  string     `json:"purpose"`
	Status                   LoanStatus `json:"status"`
	RepaymentProgressPercent int        `json:"repayment_progress_percent"`
	EnvironmentalImpact      string     `json:"environmental_impact"`
}

var (
	ErrProgressOutOfRange  = errors.New("repayment progress must be within [0,100]")
	ErrPendingWithProgress = errors.New("pending loan must have 0% repayment progress")
	ErrCompletedNotRepaid  = errors.New("completed loan must have 100% repayment progress")
	ErrDuplicateLoanID     = errors.New("loan id already in registry")
)

// Validate checks the status/progress invariants of a record.
func (r LoanRecord) Validate() error {
	if r.RepaymentProgressPercent < 0 || r.RepaymentProgressPercent > 100 {
		return fmt.Errorf("loan %s: %w", r.ID, ErrProgressOutOfRange)
	}
	switch r.Status {
	case LoanStatusPending:
		if r.RepaymentProgressPercent != 0 {
			return fmt.Errorf("loan %s: %w", r.ID, ErrPendingWithProgress)
		}
	case LoanStatusCompleted:
		if r.RepaymentProgressPercent != 100 {
			return fmt.Errorf("loan %s: %w", r.ID, ErrCompletedNotRepaid)
		}
	}
	return nil
}

// AmountValue parses the leading number of the display amount ("5.5 ETH" -> 5.5).
func (r LoanRecord) AmountValue() (decimal.Decimal, error) {
	return leadingDecimal(r.Amount)
}

// ImpactTons parses the leading number of the impact text ("2.5 tons CO2 saved" -> 2.5).
func (r LoanRecord) ImpactTons() (decimal.Decimal, error) {
	return leadingDecimal(r.EnvironmentalImpact)
}

func leadingDecimal(s string) (decimal.Decimal, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return decimal.Zero, fmt.Errorf("no number in %q", s)
	}
	return decimal.NewFromString(strings.ReplaceAll(fields[0], ",", ""))
}

// FormatAmount renders an amount with its unit, keeping at least one decimal
// place the way the registry displays amounts ("12" -> "12.0 ETH").
func FormatAmount(amount decimal.Decimal, currency string) string {
	places := -amount.Exponent()
	if places < 1 {
		places = 1
	}
	return amount.StringFixed(places) + " " + currency
}

// SeedLoans returns the registry contents every new session starts with.
func SeedLoans() []LoanRecord {
	return []LoanRecord{
		{
			ID:                       "0x1a2b3c",
			Borrower:                 "0x742d...8f1a",
			Amount:                   "5.5 ETH",
			Purpose:                  "Solar Panel Installation",
			Status:                   LoanStatusActive,
			RepaymentProgressPercent: 65,
			EnvironmentalImpact:      "2.5 tons CO2 saved",
		},
		{
			ID:                       "0x2b3c4d",
			Borrower:                 "0x851e...9g2b",
			Amount:                   "12.0 ETH",
			Purpose:                  "Wind Turbine Project",
			Status:                   LoanStatusPending,
			RepaymentProgressPercent: 0,
			EnvironmentalImpact:      "8.2 tons CO2 projected",
		},
		{
			ID:                       "0x3c4d5e",
			Borrower:                 "0x962f...ah3c",
			Amount:                   "3.2 ETH",
			Purpose:                  "Electric Vehicle Purchase",
			Status:                   LoanStatusCompleted,
			RepaymentProgressPercent: 100,
			EnvironmentalImpact:      "1.8 tons CO2 saved",
		},
	}
}

// IconKind names the icon shown next to a loan status badge.
type IconKind string

const (
	IconTrendingUp  IconKind = "TrendingUp"
	IconClock       IconKind = "Clock"
	IconCheckCircle IconKind = "CheckCircle"
	IconAlertCircle IconKind = "AlertCircle"
)

// StatusPresentation is the badge styling for a loan status.
type StatusPresentation struct {
	ColorClass string   `json:"color_class"`
	IconKind   IconKind `json:"icon_kind"`
}

// FallbackPresentation is used for any status outside the known set.
var FallbackPresentation = StatusPresentation{
	ColorClass: "bg-muted text-muted-foreground",
	IconKind:   IconAlertCircle,
}

// PresentStatus maps a raw status string to its badge styling.
func PresentStatus(status string) StatusPresentation {
	switch LoanStatus(status) {
	case LoanStatusActive:
		return StatusPresentation{ColorClass: "bg-accent text-accent-foreground", IconKind: IconTrendingUp}
	case LoanStatusPending:
		return StatusPresentation{ColorClass: "bg-yellow-500 text-yellow-50", IconKind: IconClock}
	case LoanStatusCompleted:
		return StatusPresentation{ColorClass: "bg-green-500 text-green-50", IconKind: IconCheckCircle}
	default:
		return FallbackPresentation
	}
}
