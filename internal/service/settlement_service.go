package service

import (
	"context"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// SettlementServiceImpl implements ports.SettlementService.
type SettlementServiceImpl struct {
	walletRepo ports.WalletRepository
	journal    ports.LedgerJournal
	quotes     ports.QuoteProvider
	paths      ports.LedgerPathResolver
	log        zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	walletRepo ports.WalletRepository,
	journal ports.LedgerJournal,
	quotes ports.QuoteProvider,
	paths ports.LedgerPathResolver,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		walletRepo: walletRepo,
		journal:    journal,
		quotes:     quotes,
		paths:      paths,
		log:        log,
	}
}

// Settle records one payment between two wallets as a balanced ledger
// transaction, deriving the second currency side from a live quote
// when the wallet currencies differ. The whole transaction is
// constructed and validated before the single atomic append; no
// partial ledger state can ever be committed. Re-submitting the same
// payment identity returns the originally committed transaction.
func (s *SettlementServiceImpl) Settle(ctx context.Context, req ports.SettleRequest) (*domain.LedgerTransaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	sender, err := s.walletRepo.FindByID(ctx, req.SenderWalletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if sender == nil {
		return nil, apperror.ErrNotFound("sender wallet")
	}

	recipient, err := s.walletRepo.FindByID(ctx, req.RecipientWalletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if recipient == nil {
		return nil, apperror.ErrNotFound("recipient wallet")
	}

	amount, err := domain.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	flow := domain.NewPaymentFlow(sender, recipient)
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

	payerPath := s.paths.CustomerLiability(sender.ID)
	payeePath := s.paths.CustomerLiability(recipient.ID)

	postings := domain.SettlementPostings(
		payerPath,
		payeePath,
		amounts.SenderAmount(sender.Currency),
		amounts.RecipientAmount(recipient.Currency),
	)

	if req.Fee != nil {
		fee, err := domain.NewMoney(req.Fee.Amount, req.Fee.Currency)
		if err != nil {
			return nil, err
		}
		postings = append(postings, domain.FeePostings(payerPath, fee)...)
	}

	meta := domain.TransactionMetadata{
		PaymentID: req.PaymentID.String(),
		Memo:      req.Memo,
	}
	if amounts.Quote != nil {
		validUntil := amounts.Quote.ValidUntil
		meta.QuoteBase = string(amounts.Quote.Base)
		meta.QuoteCurrency = string(amounts.Quote.Quote)
		meta.QuoteRate = amounts.Quote.Rate.String()
		meta.QuoteValidUntil = &validUntil
	}

	key := domain.BuildPaymentIdempotencyKey(req.PaymentID)
	tx, err := domain.NewLedgerTransaction(key, postings, meta)
	if err != nil {
		return nil, err
	}

	result, err := s.journal.Append(ctx, tx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if result.Duplicate {
		s.log.Info().
			Str("payment_id", req.PaymentID.String()).
			Str("tx_id", result.Transaction.ID.String()).
			Msg("duplicate settlement replayed, returning original transaction")
		return result.Transaction, nil
	}

	s.log.Info().
		Str("payment_id", req.PaymentID.String()).
		Str("tx_id", result.Transaction.ID.String()).
		Int64("amount", req.Amount).
		Str("currency", string(req.Currency)).
		Msg("payment settled")

	return result.Transaction, nil
}
