package service

import (
	"fmt"
	"strings"

	"greenfund-demo/internal/core/ports"
	"greenfund-demo/pkg/apperror"

	"github.com/shopspring/decimal"
)

// LenientAmountPolicy accepts any non-blank amount, including non-numeric text.
type LenientAmountPolicy struct{}

// Check always succeeds.
func (LenientAmountPolicy) Check(string) error { return nil }

// StrictAmountPolicy requires the amount to parse as a positive decimal.
type StrictAmountPolicy struct{}

// Check returns LOAN_002 when amount is not a positive decimal.
func (StrictAmountPolicy) Check(amount string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return apperror.ErrInvalidLoanAmount(err)
	}
	if !d.IsPositive() {
		return apperror.ErrInvalidLoanAmount(fmt.Errorf("amount %s is not positive", d))
	}
	return nil
}

// NewAmountPolicy picks the policy for the strict_amount setting.
func NewAmountPolicy(strict bool) ports.AmountPolicy {
	if strict {
		return StrictAmountPolicy{}
	}
	return LenientAmountPolicy{}
}
