package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account into the database.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, role, default_wallet_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, string(a.Role), a.DefaultWalletID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindByID fetches an account by its UUID, including its wallet ids.
func (r *AccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, role, default_wallet_id, created_at, updated_at
		FROM accounts WHERE id = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Role, &a.DefaultWalletID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}

	if err := r.loadWalletIDs(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// FindDealer fetches the single account flagged with the dealer role.
func (r *AccountRepo) FindDealer(ctx context.Context) (*domain.Account, error) {
	query := `SELECT id, role, default_wallet_id, created_at, updated_at
		FROM accounts WHERE role = $1 LIMIT 1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, string(domain.AccountRoleDealer)).Scan(
		&a.ID, &a.Role, &a.DefaultWalletID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dealer account: %w", err)
	}

	if err := r.loadWalletIDs(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update persists the mutable fields of an account.
func (r *AccountRepo) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET default_wallet_id = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, a.DefaultWalletID, a.ID)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update account: no rows affected for %s", a.ID)
	}
	return nil
}

func (r *AccountRepo) loadWalletIDs(ctx context.Context, a *domain.Account) error {
	query := `SELECT id FROM wallets WHERE account_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, a.ID)
	if err != nil {
		return fmt.Errorf("list account wallets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var walletID uuid.UUID
		if err := rows.Scan(&walletID); err != nil {
			return fmt.Errorf("scan wallet id: %w", err)
		}
		a.WalletIDs = append(a.WalletIDs, walletID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate account wallets: %w", err)
	}
	return nil
}
