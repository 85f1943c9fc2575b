package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"settlement-ledger/pkg/apperror"
)

// inversePrecision bounds the decimal places kept when inverting a
// rate. Sixteen places keep round-trip conversion drift within one
// smallest unit for any realistic market rate.
const inversePrecision = 16

// ExchangeRateQuote is a time-bounded exchange rate between two
// currencies. Rate is the number of Quote smallest units per one Base
// smallest unit.
type ExchangeRateQuote struct {
	Base       Currency        `json:"base"`
	Quote      Currency        `json:"quote"`
	Rate       decimal.Decimal `json:"rate"`
	ValidUntil time.Time       `json:"valid_until"`
}

// QuoteSource supplies point-in-time quotes. Implementations must fail
// closed: no stale or default rates when the feed is unavailable.
type QuoteSource interface {
	QuoteFor(ctx context.Context, base, quote Currency) (*ExchangeRateQuote, error)
}

// Validate checks the quote is usable at instant now: a strictly
// positive rate and an unexpired validity window. An expired quote is
// rejected, never silently reused.
func (q *ExchangeRateQuote) Validate(now time.Time) error {
	if !q.Rate.IsPositive() {
		return apperror.ErrInvalidQuote()
	}
	if now.After(q.ValidUntil) {
		return apperror.ErrQuoteExpired()
	}
	return nil
}

// Convert computes the equivalent of m in the quote currency as a
// single multiply against the raw integer magnitude, rounded to the
// target's smallest unit with banker's rounding (round-half-to-even).
// The single multiply-then-round step is the only place value can be
// created or destroyed; no intermediate floats are ever involved.
func (q *ExchangeRateQuote) Convert(m Money) (Money, error) {
	if err := q.Validate(time.Now()); err != nil {
		return Money{}, err
	}
	if m.Currency != q.Base {
		return Money{}, apperror.ErrCurrencyMismatch(string(m.Currency), string(q.Base))
	}

	converted := decimal.NewFromInt(m.Amount).Mul(q.Rate).RoundBank(0)
	return Money{Amount: converted.IntPart(), Currency: q.Quote}, nil
}

// Inverse returns the quote for the opposite direction, sharing the
// same validity deadline.
func (q *ExchangeRateQuote) Inverse() *ExchangeRateQuote {
	return &ExchangeRateQuote{
		Base:       q.Quote,
		Quote:      q.Base,
		Rate:       decimal.NewFromInt(1).DivRound(q.Rate, inversePrecision),
		ValidUntil: q.ValidUntil,
	}
}
