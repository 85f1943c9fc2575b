package domain

import (
	"fmt"

	"settlement-ledger/pkg/apperror"
)

// Currency identifies a wallet denomination.
type Currency string

const (
	CurrencyBTC Currency = "BTC" // smallest unit: satoshi
	CurrencyUSD Currency = "USD" // smallest unit: cent
)

// ParseCurrency validates a currency code.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case CurrencyBTC:
		return CurrencyBTC, nil
	case CurrencyUSD:
		return CurrencyUSD, nil
	}
	return "", apperror.ErrUnknownCurrency(code)
}

// Money pairs a non-negative integer magnitude in the currency's
// smallest unit with its currency tag. Immutable once constructed;
// cross-currency arithmetic must go through an ExchangeRateQuote.
type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewMoney constructs a Money value. Negative magnitudes are rejected.
func NewMoney(amount int64, currency Currency) (Money, error) {
	if amount < 0 {
		return Money{}, apperror.ErrInvalidAmount()
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Add returns a + b. Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, apperror.ErrCurrencyMismatch(string(m.Currency), string(other.Currency))
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Sub returns m - other. Fails if currencies differ or the result
// would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, apperror.ErrCurrencyMismatch(string(m.Currency), string(other.Currency))
	}
	if other.Amount > m.Amount {
		return Money{}, apperror.ErrNegativeResult()
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// IsZero reports whether the magnitude is zero.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
