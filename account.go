package moneta

import (
	"github.com/shopspring/decimal"

	"github.com/moneta-ledger/moneta/model"
)

// OpenAccount creates an account against an existing bank for an existing
// user. This is the only referential-integrity check in the system: because
// nothing can delete a bank, user or account, later operations trust the ids
// recorded here. The opening balance is accepted as given, any sign.
func (m *Moneta) OpenAccount(accountID, bankID, userID int64, openingBalance decimal.Decimal) (model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, err := m.registry.OpenAccount(accountID, bankID, userID, openingBalance)
	if err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// GetAccountByID returns a copy of the account; mutations go through the
// engine operations only.
func (m *Moneta) GetAccountByID(id int64) (model.Account, error) {
	account, err := m.registry.Account(id)
	if err != nil {
		return model.Account{}, err
	}
	out := *account
	out.OwnerIDs = append([]int64{}, account.OwnerIDs...)
	return out, nil
}

func (m *Moneta) GetAllAccounts() []model.Account {
	return m.registry.Accounts()
}
