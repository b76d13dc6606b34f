package domain

import "fmt"

// ViewSelection is the active dashboard tab.
type ViewSelection string

const (
	ViewDashboard ViewSelection = "dashboard"
	ViewApply     ViewSelection = "apply"
	ViewImpact    ViewSelection = "impact"
)

// DefaultView is the tab shown to a fresh session.
const DefaultView = ViewDashboard

// Views lists every selectable tab in display order.
func Views() []ViewSelection {
	return []ViewSelection{ViewDashboard, ViewApply, ViewImpact}
}

// IsValid reports whether v is one of the known tabs.
func (v ViewSelection) IsValid() bool {
	switch v {
	case ViewDashboard, ViewApply, ViewImpact:
		return true
	}
	return false
}

// Label returns the tab caption.
func (v ViewSelection) Label() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewApply:
		return "Apply for Loan"
	case ViewImpact:
		return "Environmental Impact"
	}
	return string(v)
}

// ParseView converts a tab name into a ViewSelection.
func ParseView(s string) (ViewSelection, error) {
	v := ViewSelection(s)
	if !v.IsValid() {
		return "", fmt.Errorf("unknown view %q", s)
	}
	return v, nil
}
