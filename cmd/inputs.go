package main

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Front-end payloads, validated before the core is called. Identifiers are
// caller-supplied non-negative integers; the core generates none.

type createBankInput struct {
	ID   int64
	Name string
}

func (i createBankInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.Min(int64(0))),
		validation.Field(&i.Name, validation.Required),
	)
}

type createUserInput struct {
	ID   int64
	Name string
}

func (i createUserInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.Min(int64(0))),
		validation.Field(&i.Name, validation.Required),
	)
}

type openAccountInput struct {
	AccountID      int64
	BankID         int64
	UserID         int64
	OpeningBalance decimal.Decimal
}

// Validate checks the ids only; the opening balance is accepted as given,
// any sign.
func (i openAccountInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.AccountID, validation.Min(int64(0))),
		validation.Field(&i.BankID, validation.Min(int64(0))),
		validation.Field(&i.UserID, validation.Min(int64(0))),
	)
}

type movementInput struct {
	SourceID      int64
	DestinationID int64
	Amount        decimal.Decimal
}

// Validate checks the ids only; amount rules belong to the engine, which
// owns the exact check order.
func (i movementInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.SourceID, validation.Min(int64(0))),
		validation.Field(&i.DestinationID, validation.Min(int64(0))),
	)
}

type accountAmountInput struct {
	AccountID int64
	Amount    decimal.Decimal
}

func (i accountAmountInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.AccountID, validation.Min(int64(0))),
	)
}
