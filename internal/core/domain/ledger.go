package domain

// An accounting reminder:
// https://en.wikipedia.org/wiki/Double-entry_bookkeeping

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"settlement-ledger/pkg/apperror"
)

// AccountPathKind classifies ledger account paths.
type AccountPathKind string

const (
	PathKindCustomerLiability AccountPathKind = "CUSTOMER_LIABILITY"
	PathKindSystemAsset       AccountPathKind = "SYSTEM_ASSET"
	PathKindSystemExpense     AccountPathKind = "SYSTEM_EXPENSE"
	PathKindSystemRevenue     AccountPathKind = "SYSTEM_REVENUE"
	PathKindDealerLiability   AccountPathKind = "DEALER_LIABILITY"
)

// Fixed system account paths.
const (
	SystemAssetPath   = "Assets:Reserve:Settlement"
	SettlementFeePath = "Expenses:Settlement:Fees"
	FeeRevenuePath    = "Revenue:Settlement:Fees"
)

// CustomerLiabilityPath returns the liability path for a customer wallet.
// Deterministic pure function of the wallet id.
func CustomerLiabilityPath(walletID uuid.UUID) string {
	return "Liabilities:" + walletID.String()
}

// EntryDirection is the side of a posting.
type EntryDirection string

const (
	Debit  EntryDirection = "DEBIT"
	Credit EntryDirection = "CREDIT"
)

// Posting is a single debit or credit against one account path in one
// currency.
type Posting struct {
	AccountPath string         `json:"account_path"`
	Direction   EntryDirection `json:"direction"`
	Amount      Money          `json:"amount"`
}

// TransactionMetadata carries the audit trail of a committed movement,
// including the exact quote used for any currency conversion.
type TransactionMetadata struct {
	PaymentID       string     `json:"payment_id"`
	Memo            string     `json:"memo,omitempty"`
	QuoteBase       string     `json:"quote_base,omitempty"`
	QuoteCurrency   string     `json:"quote_currency,omitempty"`
	QuoteRate       string     `json:"quote_rate,omitempty"`
	QuoteValidUntil *time.Time `json:"quote_valid_until,omitempty"`
}

// LedgerTransaction is an ordered set of balanced postings recording
// one committed economic event. Immutable once constructed; owned by
// the journal after a successful append.
type LedgerTransaction struct {
	ID             uuid.UUID           `json:"id"`
	IdempotencyKey string              `json:"idempotency_key"`
	Postings       []Posting           `json:"postings"`
	Metadata       TransactionMetadata `json:"metadata"`
	CreatedAt      time.Time           `json:"created_at"`
}

// NewLedgerTransaction validates the balance law before any I/O can
// occur and returns the immutable transaction.
func NewLedgerTransaction(idempotencyKey string, postings []Posting, meta TransactionMetadata) (*LedgerTransaction, error) {
	tx := &LedgerTransaction{
		ID:             uuid.New(),
		IdempotencyKey: idempotencyKey,
		Postings:       postings,
		Metadata:       meta,
		CreatedAt:      time.Now().UTC(),
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Validate enforces the double-entry balance law: for every currency
// present among the postings, sum(debits) == sum(credits).
func (t *LedgerTransaction) Validate() error {
	if len(t.Postings) == 0 {
		return apperror.ErrEmptyTransaction()
	}

	balance := make(map[Currency]int64)
	for _, p := range t.Postings {
		if p.Amount.Amount < 0 {
			return apperror.ErrInvalidAmount()
		}
		switch p.Direction {
		case Debit:
			balance[p.Amount.Currency] += p.Amount.Amount
		case Credit:
			balance[p.Amount.Currency] -= p.Amount.Amount
		}
	}
	for currency, sum := range balance {
		if sum != 0 {
			return apperror.ErrUnbalancedTransaction(string(currency))
		}
	}
	return nil
}

// Currencies lists the distinct currencies among the postings.
func (t *LedgerTransaction) Currencies() []Currency {
	seen := make(map[Currency]bool)
	var out []Currency
	for _, p := range t.Postings {
		if !seen[p.Amount.Currency] {
			seen[p.Amount.Currency] = true
			out = append(out, p.Amount.Currency)
		}
	}
	return out
}

// BuildPaymentIdempotencyKey digests the payment identity into a
// stable idempotency key. Keyed by identity, not content: a retry for
// the same payment id deduplicates even if a later quote would have
// produced a different derived amount. First successful commit wins.
func BuildPaymentIdempotencyKey(paymentID uuid.UUID) string {
	sum := sha256.Sum256([]byte("payment:" + paymentID.String()))
	return hex.EncodeToString(sum[:])
}

// SettlementPostings builds the posting set for a two-wallet
// settlement. Cross-currency movements produce two independently
// balanced groups, one per currency, never a single netted
// cross-currency posting: per-currency auditability is preserved.
func SettlementPostings(payerPath, payeePath string, payerAmount, payeeAmount Money) []Posting {
	return []Posting{
		{AccountPath: payerPath, Direction: Debit, Amount: payerAmount},
		{AccountPath: SystemAssetPath, Direction: Credit, Amount: payerAmount},
		{AccountPath: SystemAssetPath, Direction: Debit, Amount: payeeAmount},
		{AccountPath: payeePath, Direction: Credit, Amount: payeeAmount},
	}
}

// FeePostings builds the fee pair: debit the fee payer, credit fee
// revenue, in the fee's own currency. The fee amount is an input, not
// derived here.
func FeePostings(feePayerPath string, fee Money) []Posting {
	return []Posting{
		{AccountPath: feePayerPath, Direction: Debit, Amount: fee},
		{AccountPath: FeeRevenuePath, Direction: Credit, Amount: fee},
	}
}
