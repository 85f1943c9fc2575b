package dto

// CreateAccountRequest is the request body for account creation.
type CreateAccountRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=customer dealer"`
}

// AddWalletRequest is the request body for wallet provisioning.
type AddWalletRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

// FeeSpec is a pre-computed fee attached to a settlement.
type FeeSpec struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"required,currency"`
}

// SettleRequest is the request body for payment settlement.
type SettleRequest struct {
	PaymentID         string   `json:"payment_id" binding:"required,uuid"`
	SenderWalletID    string   `json:"sender_wallet_id" binding:"required,uuid"`
	RecipientWalletID string   `json:"recipient_wallet_id" binding:"required,uuid"`
	Amount            int64    `json:"amount" binding:"required,gt=0"`
	Currency          string   `json:"currency" binding:"required,currency"`
	Memo              string   `json:"memo" binding:"max=200"`
	Fee               *FeeSpec `json:"fee,omitempty"`
}

// InvoiceCreateRequest is the request body for invoice creation, both
// self-issued and on behalf of a recipient.
type InvoiceCreateRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"required,currency"`
	Memo     string `json:"memo" binding:"max=200"`
}

// RateLimitResetRequest is the request body for the admin limiter reset.
type RateLimitResetRequest struct {
	Rule     string `json:"rule" binding:"required,oneof=invoice_create invoice_create_for_recipient"`
	WalletID string `json:"wallet_id" binding:"required,uuid"`
}

// AccountResponse is the response body for account operations.
type AccountResponse struct {
	ID              string   `json:"id"`
	Role            string   `json:"role"`
	WalletIDs       []string `json:"wallet_ids"`
	DefaultWalletID *string  `json:"default_wallet_id,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

// WalletResponse is the response body for wallet operations.
type WalletResponse struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
}

// MoneyResponse is one currency side of an amount.
type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PostingResponse is a single ledger posting.
type PostingResponse struct {
	AccountPath string        `json:"account_path"`
	Direction   string        `json:"direction"`
	Amount      MoneyResponse `json:"amount"`
}

// TransactionResponse is the response body for settlement results and
// transaction reads.
type TransactionResponse struct {
	ID              string            `json:"id"`
	PaymentID       string            `json:"payment_id"`
	Memo            string            `json:"memo,omitempty"`
	QuoteRate       string            `json:"quote_rate,omitempty"`
	QuoteValidUntil *string           `json:"quote_valid_until,omitempty"`
	Postings        []PostingResponse `json:"postings"`
	CreatedAt       string            `json:"created_at"`
}

// InvoiceResponse is the response body for invoice creation.
type InvoiceResponse struct {
	ID               string        `json:"id"`
	WalletID         string        `json:"wallet_id"`
	Memo             string        `json:"memo,omitempty"`
	FixedAmount      MoneyResponse `json:"fixed_amount"`
	SettlementAmount MoneyResponse `json:"settlement_amount"`
	QuoteRate        string        `json:"quote_rate,omitempty"`
	CreatedAt        string        `json:"created_at"`
	ExpiresAt        string        `json:"expires_at"`
}
