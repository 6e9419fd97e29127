package moneta

import (
	"github.com/moneta-ledger/moneta/model"
)

// CreateUser registers a new user under the caller-assigned id. Same
// lifecycle as CreateBank.
func (m *Moneta) CreateUser(id int64, name string) (model.User, error) {
	user, err := m.registry.CreateUser(model.User{UserID: id, Name: name})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (m *Moneta) GetUserByID(id int64) (model.User, error) {
	return m.registry.User(id)
}

func (m *Moneta) GetAllUsers() []model.User {
	return m.registry.Users()
}
