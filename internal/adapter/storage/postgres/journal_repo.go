package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JournalRepo implements ports.LedgerJournal on two tables:
// ledger_transactions holds one row per committed transaction with a
// unique index on idempotency_key, ledger_postings holds its ordered
// posting rows. The unique index is what makes Append idempotent under
// concurrency; no advisory locking is needed.
type JournalRepo struct {
	pool       Pool
	transactor ports.DBTransactor
}

// NewJournalRepo creates a new JournalRepo.
func NewJournalRepo(pool Pool) *JournalRepo {
	return &JournalRepo{pool: pool, transactor: NewTransactor(pool)}
}

const insertTransactionQuery = `INSERT INTO ledger_transactions
		(id, idempotency_key, payment_id, memo, quote_base, quote_currency, quote_rate, quote_valid_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (idempotency_key) DO NOTHING`

const insertPostingQuery = `INSERT INTO ledger_postings
		(transaction_id, seq, account_path, direction, amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6)`

// Append commits the transaction and all its postings atomically. When
// the idempotency key was already committed, nothing is written and
// the original transaction is returned with Duplicate set.
func (r *JournalRepo) Append(ctx context.Context, tx *domain.LedgerTransaction) (*ports.AppendResult, error) {
	dbtx, err := r.transactor.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin append: %w", err)
	}
	defer dbtx.Rollback(ctx)

	tag, err := dbtx.Exec(ctx, insertTransactionQuery,
		tx.ID, tx.IdempotencyKey,
		tx.Metadata.PaymentID, tx.Metadata.Memo,
		tx.Metadata.QuoteBase, tx.Metadata.QuoteCurrency,
		tx.Metadata.QuoteRate, tx.Metadata.QuoteValidUntil,
		tx.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert ledger transaction: %w", err)
	}

	// Zero rows affected means the key is already committed: a
	// concurrent insert blocks on the unique index until the winner
	// commits, so by now the original row is visible.
	if tag.RowsAffected() == 0 {
		if err := dbtx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			return nil, fmt.Errorf("rollback duplicate append: %w", err)
		}
		original, err := r.GetByIdempotencyKey(ctx, tx.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if original == nil {
			return nil, fmt.Errorf("idempotency key %s conflicted but original not found", tx.IdempotencyKey)
		}
		return &ports.AppendResult{Transaction: original, Duplicate: true}, nil
	}

	for seq, p := range tx.Postings {
		_, err := dbtx.Exec(ctx, insertPostingQuery,
			tx.ID, seq, p.AccountPath, string(p.Direction),
			p.Amount.Amount, string(p.Amount.Currency),
		)
		if err != nil {
			return nil, fmt.Errorf("insert ledger posting: %w", err)
		}
	}

	if err := dbtx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit append: %w", err)
	}
	return &ports.AppendResult{Transaction: tx}, nil
}

// GetByID fetches a committed transaction with its postings.
func (r *JournalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerTransaction, error) {
	query := `SELECT id, idempotency_key, payment_id, memo, quote_base, quote_currency, quote_rate, quote_valid_until, created_at
		FROM ledger_transactions WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByIdempotencyKey fetches a committed transaction by its key.
func (r *JournalRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.LedgerTransaction, error) {
	query := `SELECT id, idempotency_key, payment_id, memo, quote_base, quote_currency, quote_rate, quote_valid_until, created_at
		FROM ledger_transactions WHERE idempotency_key = $1`
	return r.getOne(ctx, query, key)
}

func (r *JournalRepo) getOne(ctx context.Context, query string, arg any) (*domain.LedgerTransaction, error) {
	tx := &domain.LedgerTransaction{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&tx.ID, &tx.IdempotencyKey,
		&tx.Metadata.PaymentID, &tx.Metadata.Memo,
		&tx.Metadata.QuoteBase, &tx.Metadata.QuoteCurrency,
		&tx.Metadata.QuoteRate, &tx.Metadata.QuoteValidUntil,
		&tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger transaction: %w", err)
	}

	if err := r.loadPostings(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *JournalRepo) loadPostings(ctx context.Context, tx *domain.LedgerTransaction) error {
	query := `SELECT account_path, direction, amount, currency
		FROM ledger_postings WHERE transaction_id = $1 ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, tx.ID)
	if err != nil {
		return fmt.Errorf("list ledger postings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p         domain.Posting
			direction string
			currency  string
		)
		if err := rows.Scan(&p.AccountPath, &direction, &p.Amount.Amount, &currency); err != nil {
			return fmt.Errorf("scan ledger posting: %w", err)
		}
		p.Direction = domain.EntryDirection(direction)
		p.Amount.Currency = domain.Currency(currency)
		tx.Postings = append(tx.Postings, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate ledger postings: %w", err)
	}
	return nil
}
