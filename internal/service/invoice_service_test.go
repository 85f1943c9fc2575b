package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"settlement-ledger/config"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invoiceTestDeps struct {
	svc        *InvoiceServiceImpl
	walletRepo *mocks.MockWalletRepository
	quotes     *mocks.MockQuoteProvider
	limiter    *mocks.MockRateLimiter
	ctrl       *gomock.Controller
}

var testLimits = config.RateLimitConfig{
	InvoiceCreate:             config.RateLimitRule{Limit: 120, Window: time.Minute},
	InvoiceCreateForRecipient: config.RateLimitRule{Limit: 30, Window: time.Minute},
}

func setupInvoiceService(t *testing.T) *invoiceTestDeps {
	ctrl := gomock.NewController(t)
	d := &invoiceTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		quotes:     mocks.NewMockQuoteProvider(ctrl),
		limiter:    mocks.NewMockRateLimiter(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewInvoiceService(
		d.walletRepo, d.quotes, d.limiter,
		testLimits, domain.CurrencyBTC, zerolog.Nop(),
	)
	return d
}

func allowed(limit int64) *ports.RateLimitResult {
	return &ports.RateLimitResult{Allowed: true, Limit: limit, Remaining: limit - 1}
}

// ==================== CreateInvoice Tests ====================

func TestInvoiceService_CreateInvoice_CrossCurrency(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	wallet := usdWallet(walletID)

	d.limiter.EXPECT().
		Allow(ctx, "invoice_create", walletID.String(), int64(120), time.Minute).
		Return(allowed(120), nil)
	d.walletRepo.EXPECT().FindByID(ctx, walletID).Return(wallet, nil)
	d.quotes.EXPECT().QuoteFor(ctx, domain.CurrencyUSD, domain.CurrencyBTC).Return(&domain.ExchangeRateQuote{
		Base:       domain.CurrencyUSD,
		Quote:      domain.CurrencyBTC,
		Rate:       decimal.RequireFromString("16"),
		ValidUntil: time.Now().Add(time.Minute),
	}, nil)

	inv, err := d.svc.CreateInvoice(ctx, ports.InvoiceRequest{
		WalletID: walletID,
		Amount:   500,
		Currency: domain.CurrencyUSD,
		Memo:     "consulting",
	})
	require.NoError(t, err)
	require.NotNil(t, inv)

	assert.Equal(t, walletID, inv.WalletID)
	assert.Equal(t, int64(500), inv.FixedAmount.Amount)
	assert.Equal(t, domain.CurrencyUSD, inv.FixedAmount.Currency)
	assert.Equal(t, int64(8000), inv.SettlementAmount.Amount)
	assert.Equal(t, domain.CurrencyBTC, inv.SettlementAmount.Currency)
	assert.Equal(t, "16", inv.QuoteRate)
	// Rate attached, short expiry window.
	assert.WithinDuration(t, inv.CreatedAt.Add(domain.CrossCurrencyInvoiceExpiry), inv.ExpiresAt, time.Second)
}

func TestInvoiceService_CreateInvoice_SameCurrency_LongExpiry(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.limiter.EXPECT().
		Allow(ctx, "invoice_create", walletID.String(), int64(120), time.Minute).
		Return(allowed(120), nil)
	d.walletRepo.EXPECT().FindByID(ctx, walletID).Return(btcWallet(walletID), nil)

	inv, err := d.svc.CreateInvoice(ctx, ports.InvoiceRequest{
		WalletID: walletID,
		Amount:   21000,
		Currency: domain.CurrencyBTC,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21000), inv.FixedAmount.Amount)
	assert.Equal(t, int64(21000), inv.SettlementAmount.Amount)
	assert.Empty(t, inv.QuoteRate)
	assert.WithinDuration(t, inv.CreatedAt.Add(domain.SameCurrencyInvoiceExpiry), inv.ExpiresAt, time.Second)
}

func TestInvoiceService_CreateInvoice_RateLimited(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.limiter.EXPECT().
		Allow(ctx, "invoice_create", walletID.String(), int64(120), time.Minute).
		Return(&ports.RateLimitResult{Allowed: false, Limit: 120}, nil)

	_, err := d.svc.CreateInvoice(ctx, ports.InvoiceRequest{
		WalletID: walletID,
		Amount:   100,
		Currency: domain.CurrencyBTC,
	})
	assert.Equal(t, "LIMIT_001", appCode(t, err))
}

func TestInvoiceService_CreateInvoice_LimiterDown_Allows(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.limiter.EXPECT().
		Allow(ctx, "invoice_create", walletID.String(), int64(120), time.Minute).
		Return(nil, errors.New("redis down"))
	d.walletRepo.EXPECT().FindByID(ctx, walletID).Return(btcWallet(walletID), nil)

	inv, err := d.svc.CreateInvoice(ctx, ports.InvoiceRequest{
		WalletID: walletID,
		Amount:   100,
		Currency: domain.CurrencyBTC,
	})
	require.NoError(t, err)
	assert.NotNil(t, inv)
}

func TestInvoiceService_CreateInvoice_WalletNotFound(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.limiter.EXPECT().
		Allow(ctx, "invoice_create", walletID.String(), int64(120), time.Minute).
		Return(allowed(120), nil)
	d.walletRepo.EXPECT().FindByID(ctx, walletID).Return(nil, nil)

	_, err := d.svc.CreateInvoice(ctx, ports.InvoiceRequest{
		WalletID: walletID,
		Amount:   100,
		Currency: domain.CurrencyBTC,
	})
	assert.Equal(t, "PAY_001", appCode(t, err))
}

func TestInvoiceService_CreateInvoice_ZeroAmount(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.limiter.EXPECT().
		Allow(ctx, "invoice_create", walletID.String(), int64(120), time.Minute).
		Return(allowed(120), nil)
	d.walletRepo.EXPECT().FindByID(ctx, walletID).Return(btcWallet(walletID), nil)

	_, err := d.svc.CreateInvoice(ctx, ports.InvoiceRequest{
		WalletID: walletID,
		Amount:   0,
		Currency: domain.CurrencyBTC,
	})
	assert.Equal(t, "MONEY_003", appCode(t, err))
}

// ==================== CreateInvoiceForRecipient Tests ====================

func TestInvoiceService_CreateInvoiceForRecipient_CurrencyGuard(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.limiter.EXPECT().
		Allow(ctx, "invoice_create_for_recipient", walletID.String(), int64(30), time.Minute).
		Return(allowed(30), nil)
	d.walletRepo.EXPECT().FindByID(ctx, walletID).Return(usdWallet(walletID), nil)

	// Denominating in BTC against a USD wallet is rejected: the owner
	// never chose to take on rate exposure.
	_, err := d.svc.CreateInvoiceForRecipient(ctx, ports.InvoiceRequest{
		WalletID: walletID,
		Amount:   100,
		Currency: domain.CurrencyBTC,
	})
	assert.Equal(t, "PAY_002", appCode(t, err))
}

func TestInvoiceService_CreateInvoiceForRecipient_WalletCurrency(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.limiter.EXPECT().
		Allow(ctx, "invoice_create_for_recipient", walletID.String(), int64(30), time.Minute).
		Return(allowed(30), nil)
	d.walletRepo.EXPECT().FindByID(ctx, walletID).Return(usdWallet(walletID), nil)
	d.quotes.EXPECT().QuoteFor(ctx, domain.CurrencyUSD, domain.CurrencyBTC).Return(&domain.ExchangeRateQuote{
		Base:       domain.CurrencyUSD,
		Quote:      domain.CurrencyBTC,
		Rate:       decimal.RequireFromString("20"),
		ValidUntil: time.Now().Add(time.Minute),
	}, nil)

	inv, err := d.svc.CreateInvoiceForRecipient(ctx, ports.InvoiceRequest{
		WalletID: walletID,
		Amount:   250,
		Currency: domain.CurrencyUSD,
		Memo:     "tip",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(250), inv.FixedAmount.Amount)
	assert.Equal(t, int64(5000), inv.SettlementAmount.Amount)
}
