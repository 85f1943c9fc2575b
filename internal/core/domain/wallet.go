package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds one account's balance book in a single currency.
// Balances are not stored here: the ledger journal is the system of
// record, a wallet only fixes the currency its postings use.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Currency  Currency  `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
