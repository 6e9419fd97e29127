package moneta

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/moneta-ledger/moneta/internal/ledgererror"
	"github.com/moneta-ledger/moneta/model"
)

func logAndReport(msg string, err error) error {
	logrus.Error(msg, err)
	return err
}

// Transfer moves amount from the source account to the destination account.
// Validation order: missing account, same account (only once both resolve),
// insufficient funds, non-positive amount. All checks run before any
// mutation, so a failed transfer leaves both balances untouched; a
// successful one conserves the sum of the two balances.
func (m *Moneta) Transfer(sourceID, destinationID int64, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	source, err := m.registry.Account(sourceID)
	if err != nil {
		return logAndReport("transfer source error: ", err)
	}
	destination, err := m.registry.Account(destinationID)
	if err != nil {
		return logAndReport("transfer destination error: ", err)
	}

	if source.AccountID == destination.AccountID {
		return ledgererror.New(ledgererror.ErrSameAccount,
			fmt.Sprintf("cannot transfer from account %d to itself", sourceID), nil)
	}

	if err := model.ApplyTransfer(source, destination, amount); err != nil {
		return logAndReport("transfer error: ", err)
	}
	return nil
}

// Deposit credits amount to the account.
func (m *Moneta) Deposit(accountID int64, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := model.ValidateAmount(amount); err != nil {
		return err
	}
	account, err := m.registry.Account(accountID)
	if err != nil {
		return logAndReport("deposit error: ", err)
	}
	account.Credit(amount)
	return nil
}

// Withdraw debits amount from the account. The balance is never driven
// below zero.
func (m *Moneta) Withdraw(accountID int64, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := model.ValidateAmount(amount); err != nil {
		return err
	}
	account, err := m.registry.Account(accountID)
	if err != nil {
		return logAndReport("withdraw error: ", err)
	}
	if err := account.Debit(amount); err != nil {
		return logAndReport("withdraw error: ", err)
	}
	return nil
}
