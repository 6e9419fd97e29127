/*
Copyright 2025 Moneta Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package moneta

import (
	"github.com/moneta-ledger/moneta/model"
)

// CreateBank registers a new bank under the caller-assigned id. Banks are
// never deleted; after creation they mutate only by accumulating account ids
// as accounts are opened against them.
func (m *Moneta) CreateBank(id int64, name string) (model.Bank, error) {
	bank, err := m.registry.CreateBank(model.Bank{BankID: id, Name: name})
	if err != nil {
		return model.Bank{}, err
	}
	return bank, nil
}

func (m *Moneta) GetBankByID(id int64) (model.Bank, error) {
	return m.registry.Bank(id)
}

func (m *Moneta) GetAllBanks() []model.Bank {
	return m.registry.Banks()
}
