package domain

import "strings"

// LoanApplicationDraft is the in-progress loan application form.
// Both fields hold raw user input; nothing is parsed until submission.
type LoanApplicationDraft struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// IsComplete returns true when neither field is blank.
func (d LoanApplicationDraft) IsComplete() bool {
	return strings.TrimSpace(d.Amount) != "" && strings.TrimSpace(d.Description) != ""
}

// IsEmpty returns true for a freshly created or cleared draft.
func (d LoanApplicationDraft) IsEmpty() bool {
	return d.Amount == "" && d.Description == ""
}
