package domain

import (
	"context"

	"github.com/google/uuid"

	"settlement-ledger/pkg/apperror"
)

// FlowState is the lifecycle state of a PaymentFlow.
type FlowState string

const (
	FlowStateEmpty           FlowState = "EMPTY"
	FlowStateAmountPending   FlowState = "AMOUNT_PENDING"
	FlowStateAmountsResolved FlowState = "AMOUNTS_RESOLVED"
	FlowStateConsumed        FlowState = "CONSUMED"
)

// PaymentFlow accumulates the known facts about one payment between a
// sender and a recipient wallet and derives the missing currency side
// from a quote. A flow is single-owner, single-writer: it is created
// per request and must never be shared across goroutines.
type PaymentFlow struct {
	senderWalletID    uuid.UUID
	recipientWalletID uuid.UUID
	senderCurrency    Currency
	recipientCurrency Currency

	fixed   *Money
	derived *Money
	quote   *ExchangeRateQuote
	state   FlowState
}

// FlowAmounts is the one-shot result of consuming a resolved flow.
type FlowAmounts struct {
	SenderWalletID    uuid.UUID
	RecipientWalletID uuid.UUID
	Fixed             Money
	Derived           Money
	Quote             *ExchangeRateQuote // nil for same-currency flows
}

// SenderAmount returns the side denominated in the sender wallet's currency.
func (a FlowAmounts) SenderAmount(senderCurrency Currency) Money {
	if a.Fixed.Currency == senderCurrency {
		return a.Fixed
	}
	return a.Derived
}

// RecipientAmount returns the side denominated in the recipient wallet's currency.
func (a FlowAmounts) RecipientAmount(recipientCurrency Currency) Money {
	if a.Fixed.Currency == recipientCurrency {
		return a.Fixed
	}
	return a.Derived
}

// NewPaymentFlow creates an empty flow for the given wallet pair.
func NewPaymentFlow(sender, recipient *Wallet) *PaymentFlow {
	return &PaymentFlow{
		senderWalletID:    sender.ID,
		recipientWalletID: recipient.ID,
		senderCurrency:    sender.Currency,
		recipientCurrency: recipient.Currency,
		state:             FlowStateEmpty,
	}
}

// NewInvoiceFlow creates an empty flow for invoice creation, where
// only the recipient wallet is known and the sender side is fixed to
// the settlement currency. The same machine serves invoice creation
// and payment settlement, so both share one set of validations.
func NewInvoiceFlow(recipient *Wallet, settlement Currency) *PaymentFlow {
	return &PaymentFlow{
		recipientWalletID: recipient.ID,
		senderCurrency:    settlement,
		recipientCurrency: recipient.Currency,
		state:             FlowStateEmpty,
	}
}

// State returns the current lifecycle state.
func (f *PaymentFlow) State() FlowState {
	return f.state
}

// SenderCurrency returns the sender wallet's currency.
func (f *PaymentFlow) SenderCurrency() Currency {
	return f.senderCurrency
}

// RecipientCurrency returns the recipient wallet's currency.
func (f *PaymentFlow) RecipientCurrency() Currency {
	return f.recipientCurrency
}

// AttachAmount fixes the known side of the payment. The amount must be
// denominated in one of the pair's two currencies. When the pair
// shares a currency the flow short-circuits straight to
// AmountsResolved with Derived == Fixed: requesting a quote for a
// same-currency pair is a bug, not an optimization target.
func (f *PaymentFlow) AttachAmount(m Money) error {
	switch f.state {
	case FlowStateEmpty:
	case FlowStateConsumed:
		return apperror.ErrFlowConsumed()
	default:
		return apperror.ErrFlowNotReady(string(f.state))
	}
	if m.Currency != f.senderCurrency && m.Currency != f.recipientCurrency {
		return apperror.ErrCurrencyMismatch(string(m.Currency), string(f.senderCurrency))
	}
	if m.IsZero() {
		return apperror.ErrInvalidAmount()
	}

	fixed := m
	f.fixed = &fixed

	if f.senderCurrency == f.recipientCurrency {
		derived := m
		f.derived = &derived
		f.state = FlowStateAmountsResolved
		return nil
	}

	f.state = FlowStateAmountPending
	return nil
}

// Resolve derives the missing side using a quote from src. On failure
// the flow stays AmountPending so the caller can retry without losing
// work. Resolving an already-resolved flow is a no-op.
func (f *PaymentFlow) Resolve(ctx context.Context, src QuoteSource) error {
	switch f.state {
	case FlowStateAmountPending:
	case FlowStateAmountsResolved:
		return nil
	case FlowStateConsumed:
		return apperror.ErrFlowConsumed()
	default:
		return apperror.ErrNoAmountSpecified()
	}

	target := f.senderCurrency
	if f.fixed.Currency == f.senderCurrency {
		target = f.recipientCurrency
	}

	quote, err := src.QuoteFor(ctx, f.fixed.Currency, target)
	if err != nil {
		return apperror.ErrRateUnavailable(err)
	}

	derived, err := quote.Convert(*f.fixed)
	if err != nil {
		return err
	}

	f.quote = quote
	f.derived = &derived
	f.state = FlowStateAmountsResolved
	return nil
}

// Consume finalizes the flow exactly once, yielding both resolved
// amounts for ledger posting construction. Consuming from any state
// other than AmountsResolved is a caller error: Empty corresponds to
// "no amount specified" and is fatal, not retried.
func (f *PaymentFlow) Consume() (*FlowAmounts, error) {
	switch f.state {
	case FlowStateAmountsResolved:
	case FlowStateConsumed:
		return nil, apperror.ErrFlowConsumed()
	default:
		return nil, apperror.ErrFlowNotReady(string(f.state))
	}

	f.state = FlowStateConsumed
	return &FlowAmounts{
		SenderWalletID:    f.senderWalletID,
		RecipientWalletID: f.recipientWalletID,
		Fixed:             *f.fixed,
		Derived:           *f.derived,
		Quote:             f.quote,
	}, nil
}
