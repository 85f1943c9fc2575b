package postgres

import (
	"context"
	"testing"
	"time"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(role domain.AccountRole) *domain.Account {
	return &domain.Account{
		ID:        uuid.New(),
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func accountColumns() []string {
	return []string{"id", "role", "default_wallet_id", "created_at", "updated_at"}
}

func accountRow(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumns()).AddRow(
		a.ID, a.Role, a.DefaultWalletID, a.CreatedAt, a.UpdatedAt,
	)
}

func TestAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount(domain.AccountRoleCustomer)

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(a.ID, "customer", a.DefaultWalletID, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByID_WithWallets(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount(domain.AccountRoleCustomer)
	w1 := uuid.New()
	w2 := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id").
		WithArgs(a.ID).
		WillReturnRows(accountRow(a))
	mock.ExpectQuery("SELECT id FROM wallets WHERE account_id").
		WithArgs(a.ID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(w1).AddRow(w2))

	got, err := repo.FindByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []uuid.UUID{w1, w2}, got.WalletIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(accountColumns()))

	got, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindDealer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	dealer := newTestAccount(domain.AccountRoleDealer)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE role").
		WithArgs("dealer").
		WillReturnRows(accountRow(dealer))
	mock.ExpectQuery("SELECT id FROM wallets WHERE account_id").
		WithArgs(dealer.ID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	got, err := repo.FindDealer(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsDealer())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_FindDealer_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE role").
		WithArgs("dealer").
		WillReturnRows(pgxmock.NewRows(accountColumns()))

	got, err := repo.FindDealer(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount(domain.AccountRoleCustomer)
	walletID := uuid.New()
	a.DefaultWalletID = &walletID

	mock.ExpectExec("UPDATE accounts SET default_wallet_id").
		WithArgs(a.DefaultWalletID, a.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Update(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Update_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount(domain.AccountRoleCustomer)

	mock.ExpectExec("UPDATE accounts SET default_wallet_id").
		WithArgs(a.DefaultWalletID, a.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Update(context.Background(), a)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
