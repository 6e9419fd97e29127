package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneta-ledger/moneta/internal/ledgererror"
)

// GenerateUUIDWithSuffix generates a UUID prefixed with the given module
// name, e.g. "sim_9f2c...". Entity ids in the ledger are caller-assigned
// integers; these generated ids are used for run/session identification.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}

func errInsufficientFunds(accountID int64, balance, amount decimal.Decimal) error {
	return ledgererror.New(ledgererror.ErrInsufficientFunds,
		fmt.Sprintf("account %d balance %s is below requested amount %s", accountID, balance, amount), nil)
}

func errInvalidAmount(amount decimal.Decimal) error {
	return ledgererror.New(ledgererror.ErrInvalidAmount,
		fmt.Sprintf("amount must be positive, got %s", amount), nil)
}

// validateAmount checks that an amount accepted by deposit, withdraw or
// request creation is strictly positive.
func validateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return errInvalidAmount(amount)
	}
	return nil
}

// ValidateAmount is the exported form used by the engine for single-account
// operations, where the positivity check runs before anything else.
func ValidateAmount(amount decimal.Decimal) error {
	return validateAmount(amount)
}

// ApplyTransfer moves amount from source to destination. Both arguments must
// be live handles into the registry arena: the debit and the credit land on
// the same records every other caller sees, never on copies.
//
// Check order is insufficient-funds first, then amount positivity. A
// non-positive amount that also exceeds the source balance therefore reports
// INSUFFICIENT_FUNDS. All checks run before either balance mutates, so a
// failed transfer leaves both accounts untouched.
func ApplyTransfer(source, destination *Account, amount decimal.Decimal) error {
	if source.Balance.Cmp(amount) < 0 {
		return errInsufficientFunds(source.AccountID, source.Balance, amount)
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	source.Balance = source.Balance.Sub(amount)
	destination.Balance = destination.Balance.Add(amount)
	return nil
}
