package moneta

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/moneta-ledger/moneta/internal/ledgererror"
)

func TestCreateUser(t *testing.T) {
	m := newTestMoneta(t)

	name := gofakeit.Name()
	user, err := m.CreateUser(7, name)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, name, user.Name)
	assert.Empty(t, user.AccountIDs)

	got, err := m.GetUserByID(7)
	assert.NoError(t, err)
	assert.Equal(t, name, got.Name)
}

func TestCreateUserDuplicateID(t *testing.T) {
	m := newTestMoneta(t)

	_, err := m.CreateUser(7, gofakeit.Name())
	assert.NoError(t, err)

	_, err = m.CreateUser(7, gofakeit.Name())
	assert.Error(t, err)
	assert.Equal(t, ledgererror.ErrConflict, ledgererror.CodeOf(err))
	assert.Len(t, m.GetAllUsers(), 1)
}

func TestGetUserByIDNotFound(t *testing.T) {
	m := newTestMoneta(t)

	_, err := m.GetUserByID(404)
	assert.Error(t, err)
	assert.Equal(t, ledgererror.ErrNotFound, ledgererror.CodeOf(err))
}
