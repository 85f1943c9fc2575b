package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerLiabilityPath_Deterministic(t *testing.T) {
	walletID := uuid.New()
	path := CustomerLiabilityPath(walletID)

	assert.Equal(t, "Liabilities:"+walletID.String(), path)
	assert.Equal(t, path, CustomerLiabilityPath(walletID))
}

func TestBuildPaymentIdempotencyKey(t *testing.T) {
	paymentID := uuid.New()

	key := BuildPaymentIdempotencyKey(paymentID)
	assert.Len(t, key, 64, "sha256 hex digest")
	assert.Equal(t, key, BuildPaymentIdempotencyKey(paymentID), "stable per payment identity")
	assert.NotEqual(t, key, BuildPaymentIdempotencyKey(uuid.New()))
}

func TestSettlementPostings_CrossCurrency(t *testing.T) {
	payer := CustomerLiabilityPath(uuid.New())
	payee := CustomerLiabilityPath(uuid.New())

	postings := SettlementPostings(payer, payee,
		Money{Amount: 500, Currency: CurrencyUSD},
		Money{Amount: 8000, Currency: CurrencyBTC},
	)
	require.Len(t, postings, 4)

	// Two independently balanced groups, one per currency.
	assert.Equal(t, Posting{AccountPath: payer, Direction: Debit, Amount: Money{Amount: 500, Currency: CurrencyUSD}}, postings[0])
	assert.Equal(t, Posting{AccountPath: SystemAssetPath, Direction: Credit, Amount: Money{Amount: 500, Currency: CurrencyUSD}}, postings[1])
	assert.Equal(t, Posting{AccountPath: SystemAssetPath, Direction: Debit, Amount: Money{Amount: 8000, Currency: CurrencyBTC}}, postings[2])
	assert.Equal(t, Posting{AccountPath: payee, Direction: Credit, Amount: Money{Amount: 8000, Currency: CurrencyBTC}}, postings[3])
}

func TestNewLedgerTransaction_BalanceInvariant(t *testing.T) {
	postings := SettlementPostings(
		CustomerLiabilityPath(uuid.New()),
		CustomerLiabilityPath(uuid.New()),
		Money{Amount: 500, Currency: CurrencyUSD},
		Money{Amount: 8000, Currency: CurrencyBTC},
	)

	tx, err := NewLedgerTransaction("key-1", postings, TransactionMetadata{PaymentID: "pay-1"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.NoError(t, tx.Validate())
	assert.ElementsMatch(t, []Currency{CurrencyUSD, CurrencyBTC}, tx.Currencies())
}

func TestNewLedgerTransaction_RejectsUnbalanced(t *testing.T) {
	postings := []Posting{
		{AccountPath: "Liabilities:a", Direction: Debit, Amount: Money{Amount: 500, Currency: CurrencyUSD}},
		{AccountPath: SystemAssetPath, Direction: Credit, Amount: Money{Amount: 499, Currency: CurrencyUSD}},
	}

	_, err := NewLedgerTransaction("key-1", postings, TransactionMetadata{})
	assert.Equal(t, "LEDG_001", errCode(t, err))
}

func TestNewLedgerTransaction_RejectsCrossCurrencyNetting(t *testing.T) {
	// A single "net" posting pair across currencies leaves both
	// per-currency sums unbalanced.
	postings := []Posting{
		{AccountPath: "Liabilities:a", Direction: Debit, Amount: Money{Amount: 500, Currency: CurrencyUSD}},
		{AccountPath: "Liabilities:b", Direction: Credit, Amount: Money{Amount: 8000, Currency: CurrencyBTC}},
	}

	_, err := NewLedgerTransaction("key-1", postings, TransactionMetadata{})
	assert.Equal(t, "LEDG_001", errCode(t, err))
}

func TestNewLedgerTransaction_RejectsEmpty(t *testing.T) {
	_, err := NewLedgerTransaction("key-1", nil, TransactionMetadata{})
	assert.Equal(t, "LEDG_002", errCode(t, err))
}

func TestFeePostings_Balanced(t *testing.T) {
	fee := Money{Amount: 25, Currency: CurrencyUSD}
	payerPath := CustomerLiabilityPath(uuid.New())

	base := SettlementPostings(payerPath, CustomerLiabilityPath(uuid.New()),
		Money{Amount: 500, Currency: CurrencyUSD},
		Money{Amount: 8000, Currency: CurrencyBTC},
	)
	all := append(base, FeePostings(payerPath, fee)...)

	tx, err := NewLedgerTransaction("key-1", all, TransactionMetadata{})
	require.NoError(t, err)
	assert.NoError(t, tx.Validate())

	last := tx.Postings[len(tx.Postings)-1]
	assert.Equal(t, FeeRevenuePath, last.AccountPath)
	assert.Equal(t, Credit, last.Direction)
	assert.Equal(t, fee, last.Amount)
}
