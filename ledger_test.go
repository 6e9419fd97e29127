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
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/moneta-ledger/moneta/config"
	"github.com/moneta-ledger/moneta/internal/ledgererror"
	"github.com/moneta-ledger/moneta/registry"
)

func newTestMoneta(t *testing.T) *Moneta {
	t.Helper()
	config.MockConfig(&config.Configuration{})
	m, err := NewMoneta(registry.NewRegistry())
	if err != nil {
		t.Fatalf("Error creating Moneta instance: %s", err)
	}
	return m
}

func TestCreateBank(t *testing.T) {
	m := newTestMoneta(t)

	name := gofakeit.Company()
	bank, err := m.CreateBank(1, name)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), bank.BankID)
	assert.Equal(t, name, bank.Name)
	assert.Empty(t, bank.AccountIDs)
	assert.WithinDuration(t, time.Now(), bank.CreatedAt, time.Second)

	got, err := m.GetBankByID(1)
	assert.NoError(t, err)
	assert.Equal(t, name, got.Name)
}

func TestCreateBankDuplicateID(t *testing.T) {
	m := newTestMoneta(t)

	_, err := m.CreateBank(1, gofakeit.Company())
	assert.NoError(t, err)

	_, err = m.CreateBank(1, gofakeit.Company())
	assert.Error(t, err)
	assert.Equal(t, ledgererror.ErrConflict, ledgererror.CodeOf(err))
	assert.Len(t, m.GetAllBanks(), 1)
}

func TestGetBankByIDNotFound(t *testing.T) {
	m := newTestMoneta(t)

	_, err := m.GetBankByID(404)
	assert.Error(t, err)
	assert.Equal(t, ledgererror.ErrNotFound, ledgererror.CodeOf(err))
}

func TestGetAllBanksInsertionOrder(t *testing.T) {
	m := newTestMoneta(t)

	for _, id := range []int64{3, 1, 2} {
		_, err := m.CreateBank(id, gofakeit.Company())
		assert.NoError(t, err)
	}

	banks := m.GetAllBanks()
	assert.Len(t, banks, 3)
	assert.Equal(t, int64(3), banks[0].BankID)
	assert.Equal(t, int64(1), banks[1].BankID)
	assert.Equal(t, int64(2), banks[2].BankID)
}
