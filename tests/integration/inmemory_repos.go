package integration

import (
	"context"
	"sync"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/google/uuid"
)

// In-memory repository implementations backing the full HTTP stack in
// these tests. They mirror the concurrency behaviour that matters for
// the journal: Append holds a single lock across the duplicate check
// and the write, so a repeated idempotency key always observes the
// winner's committed transaction.

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *account
	return &cp, nil
}

func (r *inMemoryAccountRepo) FindDealer(_ context.Context) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.accounts {
		if account.IsDealer() {
			cp := *account
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallet, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *wallet
	return &cp, nil
}

func (r *inMemoryWalletRepo) FindByAccountAndCurrency(_ context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, wallet := range r.wallets {
		if wallet.AccountID == accountID && wallet.Currency == currency {
			cp := *wallet
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) PersistNew(_ context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallet := &domain.Wallet{
		ID:        uuid.New(),
		AccountID: accountID,
		Currency:  currency,
		CreatedAt: time.Now().UTC(),
	}
	r.wallets[wallet.ID] = wallet
	cp := *wallet
	return &cp, nil
}

type inMemoryJournal struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*domain.LedgerTransaction
	byKey map[string]*domain.LedgerTransaction
}

func newInMemoryJournal() *inMemoryJournal {
	return &inMemoryJournal{
		byID:  make(map[uuid.UUID]*domain.LedgerTransaction),
		byKey: make(map[string]*domain.LedgerTransaction),
	}
}

func (j *inMemoryJournal) Append(_ context.Context, tx *domain.LedgerTransaction) (*ports.AppendResult, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if original, ok := j.byKey[tx.IdempotencyKey]; ok {
		return &ports.AppendResult{Transaction: original, Duplicate: true}, nil
	}
	j.byID[tx.ID] = tx
	j.byKey[tx.IdempotencyKey] = tx
	return &ports.AppendResult{Transaction: tx}, nil
}

func (j *inMemoryJournal) GetByID(_ context.Context, id uuid.UUID) (*domain.LedgerTransaction, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.byID[id], nil
}

func (j *inMemoryJournal) GetByIdempotencyKey(_ context.Context, key string) (*domain.LedgerTransaction, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.byKey[key], nil
}

func (j *inMemoryJournal) size() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.byID)
}
