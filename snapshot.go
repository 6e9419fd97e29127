package moneta

import (
	"github.com/moneta-ledger/moneta/model"
)

// Snapshot is a read-only view of the ledger, each collection in insertion
// order. It is consumed by display layers only.
type Snapshot struct {
	Banks    []model.Bank         `json:"banks"`
	Users    []model.User         `json:"users"`
	Accounts []model.Account      `json:"accounts"`
	Requests []model.MoneyRequest `json:"requests"`
}

// Snapshot returns copies of all four collections. It is pure: repeated
// calls with no intervening mutation return equal results, and mutating the
// returned slices never touches the ledger.
func (m *Moneta) Snapshot() Snapshot {
	return Snapshot{
		Banks:    m.registry.Banks(),
		Users:    m.registry.Users(),
		Accounts: m.registry.Accounts(),
		Requests: m.registry.Requests(),
	}
}
