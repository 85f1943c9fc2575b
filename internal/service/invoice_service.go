package service

import (
	"context"
	"time"

	"settlement-ledger/config"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Named limiter rules. The per-recipient rule is tighter because it
// lets one caller create obligations against another owner's wallet.
const (
	limitInvoiceCreate             = "invoice_create"
	limitInvoiceCreateForRecipient = "invoice_create_for_recipient"
)

// InvoiceServiceImpl implements ports.InvoiceService.
type InvoiceServiceImpl struct {
	walletRepo ports.WalletRepository
	quotes     ports.QuoteProvider
	limiter    ports.RateLimiter
	limits     config.RateLimitConfig
	settlement domain.Currency
	log        zerolog.Logger
}

// NewInvoiceService creates a new InvoiceServiceImpl. All invoices
// resolve their second side in settlement, the system's settlement
// currency.
func NewInvoiceService(
	walletRepo ports.WalletRepository,
	quotes ports.QuoteProvider,
	limiter ports.RateLimiter,
	limits config.RateLimitConfig,
	settlement domain.Currency,
	log zerolog.Logger,
) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		walletRepo: walletRepo,
		quotes:     quotes,
		limiter:    limiter,
		limits:     limits,
		settlement: settlement,
		log:        log,
	}
}

// CreateInvoice creates a self-issued invoice for the given wallet.
// The amount may be denominated in the wallet currency or in the
// settlement currency; the other side is derived from a live quote at
// creation time.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, req ports.InvoiceRequest) (*domain.Invoice, error) {
	if err := s.checkLimit(ctx, limitInvoiceCreate, req.WalletID, s.limits.InvoiceCreate); err != nil {
		return nil, err
	}
	return s.create(ctx, req, false)
}

// CreateInvoiceForRecipient creates an invoice on behalf of another
// wallet's owner. Because the owner never chose the denomination, the
// amount must be in the wallet's own currency.
func (s *InvoiceServiceImpl) CreateInvoiceForRecipient(ctx context.Context, req ports.InvoiceRequest) (*domain.Invoice, error) {
	if err := s.checkLimit(ctx, limitInvoiceCreateForRecipient, req.WalletID, s.limits.InvoiceCreateForRecipient); err != nil {
		return nil, err
	}
	return s.create(ctx, req, true)
}

func (s *InvoiceServiceImpl) create(ctx context.Context, req ports.InvoiceRequest, forRecipient bool) (*domain.Invoice, error) {
	wallet, err := s.walletRepo.FindByID(ctx, req.WalletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	if forRecipient && req.Currency != wallet.Currency {
		return nil, apperror.ErrWalletCurrencyMismatch()
	}

	amount, err := domain.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	flow := domain.NewInvoiceFlow(wallet, s.settlement)
	if err := flow.AttachAmount(amount); err != nil {
		return nil, err
	}
	if err := flow.Resolve(ctx, s.quotes); err != nil {
		return nil, err
	}
	amounts, err := flow.Consume()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expiry := domain.SameCurrencyInvoiceExpiry
	if wallet.Currency != s.settlement {
		// A rate is locked into the amount, so the window is short.
		expiry = domain.CrossCurrencyInvoiceExpiry
	}

	inv := &domain.Invoice{
		ID:               uuid.New(),
		WalletID:         wallet.ID,
		Memo:             req.Memo,
		FixedAmount:      amounts.RecipientAmount(wallet.Currency),
		SettlementAmount: amounts.SenderAmount(s.settlement),
		CreatedAt:        now,
		ExpiresAt:        now.Add(expiry),
	}
	if amounts.Quote != nil {
		inv.QuoteRate = amounts.Quote.Rate.String()
	}

	s.log.Info().
		Str("invoice_id", inv.ID.String()).
		Str("wallet_id", wallet.ID.String()).
		Int64("amount", req.Amount).
		Str("currency", string(req.Currency)).
		Bool("for_recipient", forRecipient).
		Msg("invoice created")

	return inv, nil
}

// checkLimit enforces the named rule for one wallet. Limiter
// infrastructure failures degrade to allow: invoice creation must not
// go down with the limiter backend.
func (s *InvoiceServiceImpl) checkLimit(ctx context.Context, name string, walletID uuid.UUID, rule config.RateLimitRule) error {
	result, err := s.limiter.Allow(ctx, name, walletID.String(), rule.Limit, rule.Window)
	if err != nil {
		s.log.Warn().Err(err).Str("rule", name).Msg("rate limiter unavailable, allowing request")
		return nil
	}
	if !result.Allowed {
		s.log.Warn().
			Str("rule", name).
			Str("wallet_id", walletID.String()).
			Int64("limit", result.Limit).
			Msg("invoice creation rate limited")
		return apperror.ErrRateLimitExceeded()
	}
	return nil
}
