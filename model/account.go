package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a balance held at a bank by one or more users. BankID and
// OwnerIDs are validated against the registry once, when the account is
// opened; no later operation re-checks them.
type Account struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	BankID    int64           `json:"bank_id"`
	OwnerIDs  []int64         `json:"owner_ids"`
	CreatedAt time.Time       `json:"created_at"`
}

// Credit adds amount to the account balance.
func (account *Account) Credit(amount decimal.Decimal) {
	account.Balance = account.Balance.Add(amount)
}

// Debit subtracts amount from the account balance. It refuses to drive the
// balance negative.
func (account *Account) Debit(amount decimal.Decimal) error {
	if account.Balance.Cmp(amount) < 0 {
		return errInsufficientFunds(account.AccountID, account.Balance, amount)
	}
	account.Balance = account.Balance.Sub(amount)
	return nil
}
