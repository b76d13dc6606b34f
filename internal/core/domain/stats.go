package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AggregateStats holds the dashboard summary cards. It is derived on every
// read and never stored.
type AggregateStats struct {
	TotalLoans         int64
	TotalFunded        decimal.Decimal
	Currency           string
	CO2SavedTons       decimal.Decimal
	SuccessRatePercent decimal.Decimal
}

// ImpactStats holds the environmental impact tab figures.
type ImpactStats struct {
	CO2ReducedTons decimal.Decimal
	SolarProjects  int64
	EVsPurchased   int64
}

// StatsDisplay is the human-readable rendering of AggregateStats.
type StatsDisplay struct {
	TotalLoans  string `json:"total_loans"`
	TotalFunded string `json:"total_funded"`
	CO2Saved    string `json:"co2_saved"`
	SuccessRate string `json:"success_rate"`
}

var printer = message.NewPrinter(language.English)

// Display renders the stats the way the dashboard cards show them:
// "156", "847.6 ETH", "1,234 tons", "94.2%".
func (s AggregateStats) Display() StatsDisplay {
	return StatsDisplay{
		TotalLoans:  printer.Sprintf("%d", s.TotalLoans),
		TotalFunded: FormatGrouped(s.TotalFunded) + " " + s.Currency,
		CO2Saved:    FormatGrouped(s.CO2SavedTons) + " tons",
		SuccessRate: s.SuccessRatePercent.String() + "%",
	}
}

// FormatGrouped renders a decimal with thousands separators on its integer
// part, keeping the fractional digits as they are.
func FormatGrouped(d decimal.Decimal) string {
	intPart := d.Truncate(0)
	out := groupDigits(intPart.Abs().String())
	if d.IsNegative() {
		out = "-" + out
	}
	frac := d.Sub(intPart).Abs()
	if frac.IsZero() {
		return out
	}
	fracStr := frac.String() // "0.6"
	return out + fracStr[1:]
}

// groupDigits inserts a comma every three digits from the right.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
