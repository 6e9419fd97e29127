package model

import "time"

// User holds accounts. Same lifecycle as Bank: created once, never deleted,
// mutated only to append account ids as accounts are opened.
type User struct {
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	AccountIDs []int64   `json:"account_ids"`
	CreatedAt  time.Time `json:"created_at"`
}
