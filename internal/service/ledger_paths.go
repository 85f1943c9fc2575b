package service

import (
	"context"
	"sync"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PathResolver implements ports.LedgerPathResolver. Every path is a
// pure function of its inputs except the dealer liability, which needs
// a lookup of the account flagged as dealer. That lookup result is
// held in an explicit process-wide cache with a TTL and an Invalidate
// entry point; a doubled lookup under concurrent first resolution is
// tolerated since the lookup is idempotent.
type PathResolver struct {
	accountRepo ports.AccountRepository
	ttl         time.Duration
	log         zerolog.Logger

	mu         sync.RWMutex
	dealerPath string
	expiresAt  time.Time
}

// NewPathResolver creates a PathResolver. ttl <= 0 caches the dealer
// path for the process lifetime.
func NewPathResolver(accountRepo ports.AccountRepository, ttl time.Duration, log zerolog.Logger) *PathResolver {
	return &PathResolver{
		accountRepo: accountRepo,
		ttl:         ttl,
		log:         log,
	}
}

// CustomerLiability returns the liability path for a customer wallet.
func (r *PathResolver) CustomerLiability(walletID uuid.UUID) string {
	return domain.CustomerLiabilityPath(walletID)
}

// SystemAsset returns the settlement reserve asset path.
func (r *PathResolver) SystemAsset() string {
	return domain.SystemAssetPath
}

// SystemExpense returns the settlement fee expense path.
func (r *PathResolver) SystemExpense() string {
	return domain.SettlementFeePath
}

// SystemRevenue returns the fee revenue path.
func (r *PathResolver) SystemRevenue() string {
	return domain.FeeRevenuePath
}

// DealerLiability resolves the liability path of the dealer account,
// serving from cache while the entry is fresh.
func (r *PathResolver) DealerLiability(ctx context.Context) (string, error) {
	r.mu.RLock()
	if path := r.dealerPath; path != "" && (r.ttl <= 0 || time.Now().Before(r.expiresAt)) {
		r.mu.RUnlock()
		return path, nil
	}
	r.mu.RUnlock()

	dealer, err := r.accountRepo.FindDealer(ctx)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if dealer == nil {
		return "", apperror.ErrDealerAccountMissing()
	}

	path := domain.CustomerLiabilityPath(dealer.ID)

	r.mu.Lock()
	r.dealerPath = path
	r.expiresAt = time.Now().Add(r.ttl)
	r.mu.Unlock()

	r.log.Debug().Str("path", path).Msg("dealer liability path resolved")
	return path, nil
}

// Invalidate drops the cached dealer path; the next resolution hits
// the repository again.
func (r *PathResolver) Invalidate() {
	r.mu.Lock()
	r.dealerPath = ""
	r.mu.Unlock()
}
