package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending is the status every money request is created with. No
// transition away from it exists in the current surface.
const StatusPending = "Pending"

// MoneyRequest records that the holder of Source asked the holder of
// Destination for money. Requests carry no identifier and are write-once:
// the account ids are validated when the request is recorded and never
// re-checked, since nothing mutates a request afterwards.
type MoneyRequest struct {
	Source      int64           `json:"source"`
	Destination int64           `json:"destination"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
