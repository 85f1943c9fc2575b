package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invoice expiries. Cross-currency invoices carry a short expiry
// because an exchange rate is attached to the amount; same-currency
// invoices can live much longer.
const (
	CrossCurrencyInvoiceExpiry = 2 * time.Minute
	SameCurrencyInvoiceExpiry  = 24 * time.Hour
)

// Invoice is a request for payment against a wallet, with the amount
// resolved in both the wallet's currency and the settlement currency
// at creation time.
type Invoice struct {
	ID               uuid.UUID `json:"id"`
	WalletID         uuid.UUID `json:"wallet_id"`
	Memo             string    `json:"memo,omitempty"`
	FixedAmount      Money     `json:"fixed_amount"`      // denominated in the wallet's currency
	SettlementAmount Money     `json:"settlement_amount"` // denominated in the settlement currency
	QuoteRate        string    `json:"quote_rate,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// IsExpired reports whether the invoice can no longer be paid.
func (i *Invoice) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
