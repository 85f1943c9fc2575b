package service

import (
	"context"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	accountRepo ports.AccountRepository
	walletRepo  ports.WalletRepository
	log         zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	accountRepo ports.AccountRepository,
	walletRepo ports.WalletRepository,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		accountRepo: accountRepo,
		walletRepo:  walletRepo,
		log:         log,
	}
}

// CreateAccount provisions a new account with no wallets. At most one
// dealer account may exist; a second dealer registration is rejected.
func (s *WalletServiceImpl) CreateAccount(ctx context.Context, role domain.AccountRole) (*domain.Account, error) {
	if role != domain.AccountRoleCustomer && role != domain.AccountRoleDealer {
		return nil, apperror.Validation("unknown account role " + string(role))
	}

	if role == domain.AccountRoleDealer {
		existing, err := s.accountRepo.FindDealer(ctx)
		if err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		if existing != nil {
			return nil, apperror.Validation("a dealer account already exists")
		}
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:        uuid.New(),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("role", string(role)).
		Msg("account created")

	return account, nil
}

// AddWallet provisions a wallet in the given currency for an existing
// account. An account holds at most one wallet per currency, and the
// first wallet becomes the account's default.
func (s *WalletServiceImpl) AddWallet(ctx context.Context, accountID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	existing, err := s.walletRepo.FindByAccountAndCurrency(ctx, accountID, currency)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		return nil, apperror.ErrWalletExists(string(currency))
	}

	wallet, err := s.walletRepo.PersistNew(ctx, accountID, currency)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	account.AttachWallet(wallet.ID)
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("wallet_id", wallet.ID.String()).
		Str("currency", string(currency)).
		Msg("wallet added to account")

	return wallet, nil
}
