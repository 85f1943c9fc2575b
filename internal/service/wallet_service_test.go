package service

import (
	"context"
	"errors"
	"testing"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type walletTestDeps struct {
	svc         *WalletServiceImpl
	accountRepo *mocks.MockAccountRepository
	walletRepo  *mocks.MockWalletRepository
	ctrl        *gomock.Controller
}

func setupWalletService(t *testing.T) *walletTestDeps {
	ctrl := gomock.NewController(t)
	d := &walletTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		walletRepo:  mocks.NewMockWalletRepository(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewWalletService(d.accountRepo, d.walletRepo, zerolog.Nop())
	return d
}

// ==================== CreateAccount Tests ====================

func TestWalletService_CreateAccount_Customer(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Account) error {
			assert.Equal(t, domain.AccountRoleCustomer, a.Role)
			assert.NotEqual(t, uuid.Nil, a.ID)
			return nil
		})

	account, err := d.svc.CreateAccount(ctx, domain.AccountRoleCustomer)
	require.NoError(t, err)
	assert.False(t, account.IsDealer())
	assert.Empty(t, account.WalletIDs)
}

func TestWalletService_CreateAccount_SingleDealer(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().FindDealer(ctx).Return(nil, nil)
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := d.svc.CreateAccount(ctx, domain.AccountRoleDealer)
	require.NoError(t, err)
	assert.True(t, account.IsDealer())
}

func TestWalletService_CreateAccount_SecondDealerRejected(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().FindDealer(ctx).Return(&domain.Account{
		ID:   uuid.New(),
		Role: domain.AccountRoleDealer,
	}, nil)

	_, err := d.svc.CreateAccount(ctx, domain.AccountRoleDealer)
	assert.Equal(t, "MONEY_003", appCode(t, err))
}

func TestWalletService_CreateAccount_UnknownRole(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateAccount(context.Background(), domain.AccountRole("auditor"))
	assert.Error(t, err)
}

// ==================== AddWallet Tests ====================

func TestWalletService_AddWallet_FirstWalletBecomesDefault(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	walletID := uuid.New()
	account := &domain.Account{ID: accountID, Role: domain.AccountRoleCustomer}

	d.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	d.walletRepo.EXPECT().FindByAccountAndCurrency(ctx, accountID, domain.CurrencyBTC).Return(nil, nil)
	d.walletRepo.EXPECT().PersistNew(ctx, accountID, domain.CurrencyBTC).Return(&domain.Wallet{
		ID:        walletID,
		AccountID: accountID,
		Currency:  domain.CurrencyBTC,
	}, nil)
	d.accountRepo.EXPECT().Update(ctx, account).DoAndReturn(
		func(_ context.Context, a *domain.Account) error {
			require.NotNil(t, a.DefaultWalletID)
			assert.Equal(t, walletID, *a.DefaultWalletID)
			assert.Equal(t, []uuid.UUID{walletID}, a.WalletIDs)
			return nil
		})

	wallet, err := d.svc.AddWallet(ctx, accountID, domain.CurrencyBTC)
	require.NoError(t, err)
	assert.Equal(t, walletID, wallet.ID)
	assert.Equal(t, domain.CurrencyBTC, wallet.Currency)
}

func TestWalletService_AddWallet_SecondCurrencyKeepsDefault(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()
	account := &domain.Account{
		ID:              accountID,
		Role:            domain.AccountRoleCustomer,
		WalletIDs:       []uuid.UUID{firstID},
		DefaultWalletID: &firstID,
	}

	d.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	d.walletRepo.EXPECT().FindByAccountAndCurrency(ctx, accountID, domain.CurrencyUSD).Return(nil, nil)
	d.walletRepo.EXPECT().PersistNew(ctx, accountID, domain.CurrencyUSD).Return(&domain.Wallet{
		ID:        secondID,
		AccountID: accountID,
		Currency:  domain.CurrencyUSD,
	}, nil)
	d.accountRepo.EXPECT().Update(ctx, account).DoAndReturn(
		func(_ context.Context, a *domain.Account) error {
			assert.Equal(t, firstID, *a.DefaultWalletID)
			assert.Len(t, a.WalletIDs, 2)
			return nil
		})

	_, err := d.svc.AddWallet(ctx, accountID, domain.CurrencyUSD)
	require.NoError(t, err)
}

func TestWalletService_AddWallet_AccountNotFound(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()

	d.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, nil)

	_, err := d.svc.AddWallet(ctx, accountID, domain.CurrencyBTC)
	assert.Equal(t, "PAY_001", appCode(t, err))
}

func TestWalletService_AddWallet_DuplicateCurrency(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	account := &domain.Account{ID: accountID, Role: domain.AccountRoleCustomer}

	d.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	d.walletRepo.EXPECT().FindByAccountAndCurrency(ctx, accountID, domain.CurrencyBTC).Return(&domain.Wallet{
		ID:        uuid.New(),
		AccountID: accountID,
		Currency:  domain.CurrencyBTC,
	}, nil)

	_, err := d.svc.AddWallet(ctx, accountID, domain.CurrencyBTC)
	assert.Equal(t, "PAY_003", appCode(t, err))
}

func TestWalletService_AddWallet_PersistFails(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	account := &domain.Account{ID: accountID, Role: domain.AccountRoleCustomer}

	d.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	d.walletRepo.EXPECT().FindByAccountAndCurrency(ctx, accountID, domain.CurrencyUSD).Return(nil, nil)
	d.walletRepo.EXPECT().PersistNew(ctx, accountID, domain.CurrencyUSD).Return(nil, errors.New("insert failed"))

	_, err := d.svc.AddWallet(ctx, accountID, domain.CurrencyUSD)
	assert.Equal(t, "SYS_001", appCode(t, err))
}
