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

// ---- Money arithmetic (MONEY) ----
// Arithmetic misuse is a caller bug; these are never retried.

func ErrCurrencyMismatch(a, b string) *AppError {
	return New("MONEY_001", fmt.Sprintf("Currency mismatch: %s vs %s", a, b), http.StatusUnprocessableEntity)
}

func ErrNegativeResult() *AppError {
	return New("MONEY_002", "Arithmetic result would be negative", http.StatusUnprocessableEntity)
}

func ErrInvalidAmount() *AppError {
	return New("MONEY_003", "Invalid amount", http.StatusBadRequest)
}

func ErrUnknownCurrency(code string) *AppError {
	return New("MONEY_004", fmt.Sprintf("Unknown currency: %s", code), http.StatusBadRequest)
}

// ---- Exchange rates (RATE) ----

// ErrRateUnavailable is transient: the payment flow keeps its state and
// the caller may retry resolution.
func ErrRateUnavailable(err error) *AppError {
	return Wrap("RATE_001", "Exchange rate unavailable", http.StatusServiceUnavailable, err)
}

func ErrQuoteExpired() *AppError {
	return New("RATE_002", "Exchange rate quote expired", http.StatusServiceUnavailable)
}

func ErrInvalidQuote() *AppError {
	return New("RATE_003", "Exchange rate quote is not strictly positive", http.StatusServiceUnavailable)
}

// ---- Payment flow (FLOW) ----

func ErrFlowNotReady(state string) *AppError {
	return New("FLOW_001", fmt.Sprintf("Payment flow not ready: state %s", state), http.StatusInternalServerError)
}

func ErrFlowConsumed() *AppError {
	return New("FLOW_002", "Payment flow already consumed", http.StatusInternalServerError)
}

func ErrNoAmountSpecified() *AppError {
	return New("FLOW_003", "No amount specified", http.StatusBadRequest)
}

// ---- Ledger (LEDG) ----

func ErrUnbalancedTransaction(currency string) *AppError {
	return New("LEDG_001", fmt.Sprintf("Unbalanced postings for currency %s", currency), http.StatusInternalServerError)
}

func ErrEmptyTransaction() *AppError {
	return New("LEDG_002", "Ledger transaction has no postings", http.StatusInternalServerError)
}

func ErrDealerAccountMissing() *AppError {
	return New("LEDG_003", "No account flagged with the dealer role", http.StatusInternalServerError)
}

// ---- Payments & wallets (PAY) ----

func ErrNotFound(entity string) *AppError {
	return New("PAY_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrWalletCurrencyMismatch() *AppError {
	return New("PAY_002", "Invoice denomination does not match wallet currency", http.StatusBadRequest)
}

func ErrWalletExists(currency string) *AppError {
	return New("PAY_003", fmt.Sprintf("Account already has a %s wallet", currency), http.StatusConflict)
}

// ---- Rate Limiting (LIMIT) ----

func ErrRateLimitExceeded() *AppError {
	return New("LIMIT_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a MONEY_003-style validation error.
func Validation(message string) *AppError {
	return New("MONEY_003", message, http.StatusBadRequest)
}
