package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// FindByID fetches a wallet by its UUID.
func (r *WalletRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT id, account_id, currency, created_at, updated_at
		FROM wallets WHERE id = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.AccountID, &w.Currency, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// FindByAccountAndCurrency fetches the account's wallet in the given
// currency. The (account_id, currency) pair is unique.
func (r *WalletRepo) FindByAccountAndCurrency(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	query := `SELECT id, account_id, currency, created_at, updated_at
		FROM wallets WHERE account_id = $1 AND currency = $2`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, accountID, string(currency)).Scan(
		&w.ID, &w.AccountID, &w.Currency, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by account and currency: %w", err)
	}
	return w, nil
}

// PersistNew inserts a fresh wallet for the account and returns it.
func (r *WalletRepo) PersistNew(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	query := `INSERT INTO wallets (id, account_id, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	now := time.Now().UTC()
	w := &domain.Wallet{
		ID:        uuid.New(),
		AccountID: accountID,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.pool.Exec(ctx, query, w.ID, w.AccountID, string(w.Currency), w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert wallet: %w", err)
	}
	return w, nil
}
