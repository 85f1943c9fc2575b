package ports

import (
	"context"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// FindDealer returns the single account flagged with the dealer role,
	// or nil when none exists.
	FindDealer(ctx context.Context) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

// WalletRepository defines persistence operations for wallets.
type WalletRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	// FindByAccountAndCurrency returns the account's wallet in the given
	// currency, or nil when the account has none.
	FindByAccountAndCurrency(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Wallet, error)
	PersistNew(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Wallet, error)
}

// AppendResult is the outcome of a journal append. Duplicate reports
// that the idempotency key was already committed; Transaction is then
// the original committed transaction, not the submitted one.
type AppendResult struct {
	Transaction *domain.LedgerTransaction
	Duplicate   bool
}

// LedgerJournal is the append-only store of committed ledger
// transactions. Append is atomic: either the whole posting set commits
// or nothing does, and a repeated idempotency key returns the original
// result instead of posting twice.
type LedgerJournal interface {
	Append(ctx context.Context, tx *domain.LedgerTransaction) (*AppendResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerTransaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.LedgerTransaction, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
