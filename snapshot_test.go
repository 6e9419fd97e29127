package moneta

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotEmpty(t *testing.T) {
	m := newTestMoneta(t)

	snap := m.Snapshot()
	assert.Empty(t, snap.Banks)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Accounts)
	assert.Empty(t, snap.Requests)
}

func TestSnapshotIdempotent(t *testing.T) {
	m := ledgerWithAccounts(t, map[int64]float64{10: 100.0, 20: 0.0})
	_, err := m.RequestMoney(20, 10, decimal.NewFromFloat(5.0))
	assert.NoError(t, err)

	first := m.Snapshot()
	second := m.Snapshot()
	assert.Equal(t, first, second)
}

func TestSnapshotInsertionOrder(t *testing.T) {
	m := newTestMoneta(t)

	_, err := m.CreateBank(2, gofakeit.Company())
	assert.NoError(t, err)
	_, err = m.CreateBank(1, gofakeit.Company())
	assert.NoError(t, err)
	_, err = m.CreateUser(5, gofakeit.Name())
	assert.NoError(t, err)

	_, err = m.OpenAccount(30, 2, 5, decimal.Zero)
	assert.NoError(t, err)
	_, err = m.OpenAccount(10, 1, 5, decimal.Zero)
	assert.NoError(t, err)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Banks[0].BankID)
	assert.Equal(t, int64(1), snap.Banks[1].BankID)
	assert.Equal(t, int64(30), snap.Accounts[0].AccountID)
	assert.Equal(t, int64(10), snap.Accounts[1].AccountID)
	assert.Equal(t, []int64{30, 10}, snap.Users[0].AccountIDs)
}

func TestSnapshotIsViewOnly(t *testing.T) {
	m := ledgerWithAccounts(t, map[int64]float64{10: 100.0})

	snap := m.Snapshot()
	snap.Accounts[0].Balance = decimal.NewFromFloat(999.0)
	snap.Banks[0].AccountIDs[0] = 77
	snap.Users[0].Name = "someone else"

	assert.True(t, balanceOf(t, m, 10).Equal(decimal.NewFromFloat(100.0)))
	bank, err := m.GetBankByID(1)
	assert.NoError(t, err)
	assert.Equal(t, []int64{10}, bank.AccountIDs)
}

func TestSnapshotSeesEngineMutations(t *testing.T) {
	m := ledgerWithAccounts(t, map[int64]float64{10: 100.0, 20: 0.0})

	assert.NoError(t, m.Transfer(10, 20, decimal.NewFromFloat(40.0)))
	assert.NoError(t, m.Deposit(20, decimal.NewFromFloat(1.0)))

	snap := m.Snapshot()
	assert.True(t, snap.Accounts[0].Balance.Equal(decimal.NewFromFloat(60.0)))
	assert.True(t, snap.Accounts[1].Balance.Equal(decimal.NewFromFloat(41.0)))
}
