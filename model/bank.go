package model

import "time"

// Bank hosts accounts. The BankID is caller-assigned; AccountIDs holds the
// ids of accounts opened against this bank, in the order they were opened.
type Bank struct {
	BankID     int64     `json:"bank_id"`
	Name       string    `json:"name"`
	AccountIDs []int64   `json:"account_ids"`
	CreatedAt  time.Time `json:"created_at"`
}
