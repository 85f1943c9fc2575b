package ports

import (
	"context"
	"time"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// QuoteProvider supplies point-in-time exchange-rate quotes from the
// live market-data feed. Implementations must fail closed: when no
// quote can be obtained the flow fails with a rate-unavailable error,
// never a stale or default rate.
type QuoteProvider interface {
	QuoteFor(ctx context.Context, base, quote domain.Currency) (*domain.ExchangeRateQuote, error)
}

// RateLimiter bounds request rates per subject under a named limiter
// configuration.
type RateLimiter interface {
	// Allow consumes one attempt for subject under the named rule.
	Allow(ctx context.Context, name string, subject string, limit int64, window time.Duration) (*RateLimitResult, error)
	// Reset clears all recorded attempts for subject under the named rule.
	Reset(ctx context.Context, name string, subject string) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// LedgerPathResolver maps domain entities to ledger account paths. All
// kinds resolve purely except the dealer liability, which requires a
// lookup of the account flagged as dealer.
type LedgerPathResolver interface {
	CustomerLiability(walletID uuid.UUID) string
	SystemAsset() string
	SystemExpense() string
	SystemRevenue() string
	DealerLiability(ctx context.Context) (string, error)
	// Invalidate drops the cached dealer path so the next resolution
	// performs a fresh lookup.
	Invalidate()
}

// --- Service Ports (Business Logic) ---

// FeeSpec is a pre-computed fee supplied by the pricing collaborator.
// This core maps it to postings; it never derives fee amounts.
type FeeSpec struct {
	Amount   int64
	Currency domain.Currency
}

// SettleRequest holds validated input for payment settlement.
type SettleRequest struct {
	PaymentID         uuid.UUID
	SenderWalletID    uuid.UUID
	RecipientWalletID uuid.UUID
	Amount            int64
	Currency          domain.Currency
	Memo              string
	Fee               *FeeSpec // nil = no fee
}

// SettlementService settles payments between two wallets as balanced
// ledger transactions.
type SettlementService interface {
	Settle(ctx context.Context, req SettleRequest) (*domain.LedgerTransaction, error)
}

// InvoiceRequest holds validated input for invoice creation.
type InvoiceRequest struct {
	WalletID uuid.UUID
	Amount   int64
	Currency domain.Currency
	Memo     string
}

// InvoiceService creates invoices with both currency sides resolved at
// creation time.
type InvoiceService interface {
	// CreateInvoice creates a self-issued invoice for one's own wallet.
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*domain.Invoice, error)
	// CreateInvoiceForRecipient creates an invoice on behalf of another
	// wallet's owner; the denomination must match the wallet currency.
	CreateInvoiceForRecipient(ctx context.Context, req InvoiceRequest) (*domain.Invoice, error)
}

// WalletService provisions accounts and their wallets.
type WalletService interface {
	CreateAccount(ctx context.Context, role domain.AccountRole) (*domain.Account, error)
	AddWallet(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Wallet, error)
}
