package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code, so errors.Is works against the
// constructors below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Loan Application (LOAN) ----

// ErrMissingFields is the ValidationError(MissingFields) raised by draft submission.
func ErrMissingFields() *AppError {
	return New("LOAN_001", "Please fill in all required fields", http.StatusBadRequest)
}

func ErrInvalidLoanAmount(err error) *AppError {
	return Wrap("LOAN_002", "Loan amount must be a positive number", http.StatusBadRequest, err)
}

// ---- Wallet (WALLET) ----

func ErrWalletNotConnected() *AppError {
	return New("WALLET_001", "Wallet is not connected", http.StatusConflict)
}

// ---- Sessions (SESS) ----

func ErrSessionNotFound() *AppError {
	return New("SESS_001", "Session not found", http.StatusNotFound)
}

func ErrInvalidToken() *AppError {
	return New("SESS_002", "Invalid or expired session token", http.StatusUnauthorized)
}

func ErrSessionClosed() *AppError {
	return New("SESS_003", "Session has been closed", http.StatusGone)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
