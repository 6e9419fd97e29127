package moneta

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-ledger/moneta/internal/ledgererror"
	"github.com/moneta-ledger/moneta/model"
)

// RequestMoney records a pending request for amount from the source account
// to the destination account. Both accounts must exist when the request is
// recorded; nothing re-checks them later since requests are write-once.
// No approve, deny or fulfil step exists in the current surface, so
// "Pending" is the sole reachable status.
func (m *Moneta) RequestMoney(sourceID, destinationID int64, amount decimal.Decimal) (model.MoneyRequest, error) {
	if !m.registry.AccountExists(sourceID) || !m.registry.AccountExists(destinationID) {
		return model.MoneyRequest{}, ledgererror.New(ledgererror.ErrNotFound,
			fmt.Sprintf("one or both accounts not found (%d, %d)", sourceID, destinationID), nil)
	}
	if err := model.ValidateAmount(amount); err != nil {
		return model.MoneyRequest{}, err
	}

	request := model.MoneyRequest{
		Source:      sourceID,
		Destination: destinationID,
		Amount:      amount,
		Status:      model.StatusPending,
		CreatedAt:   time.Now(),
	}
	m.registry.AppendRequest(request)
	return request, nil
}

func (m *Moneta) GetAllRequests() []model.MoneyRequest {
	return m.registry.Requests()
}
