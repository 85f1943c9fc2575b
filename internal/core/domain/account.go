package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole distinguishes customers from the dealer account that
// absorbs currency-conversion exposure.
type AccountRole string

const (
	AccountRoleCustomer AccountRole = "customer"
	AccountRoleDealer   AccountRole = "dealer"
)

// Account is a logical account owning one wallet per currency.
type Account struct {
	ID              uuid.UUID   `json:"id"`
	Role            AccountRole `json:"role"`
	WalletIDs       []uuid.UUID `json:"wallet_ids"`
	DefaultWalletID *uuid.UUID  `json:"default_wallet_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// IsDealer reports whether this account is flagged with the dealer role.
func (a *Account) IsDealer() bool {
	return a.Role == AccountRoleDealer
}

// AttachWallet appends a wallet to the account and makes it the
// default when none is set yet.
func (a *Account) AttachWallet(walletID uuid.UUID) {
	if a.DefaultWalletID == nil {
		id := walletID
		a.DefaultWalletID = &id
	}
	a.WalletIDs = append(a.WalletIDs, walletID)
}
