package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-ledger/moneta/internal/ledgererror"
	"github.com/moneta-ledger/moneta/model"
)

// Registry owns the four collections of the ledger and the forward indexes
// (bank to its accounts, user to their accounts). It performs existence and
// uniqueness checks only; monetary rules live in the engine.
//
// Entities are stored as owned handles in an arena keyed by id. Account
// returns those handles directly, so the engine's debit and credit always
// land on the records every other caller sees. Slices preserve insertion
// order for snapshots; maps serve id lookups. Nothing is ever deleted.
type Registry struct {
	mu sync.RWMutex

	banks    []*model.Bank
	users    []*model.User
	accounts []*model.Account
	requests []model.MoneyRequest

	bankIndex    map[int64]*model.Bank
	userIndex    map[int64]*model.User
	accountIndex map[int64]*model.Account
}

func NewRegistry() *Registry {
	return &Registry{
		bankIndex:    make(map[int64]*model.Bank),
		userIndex:    make(map[int64]*model.User),
		accountIndex: make(map[int64]*model.Account),
	}
}

// CreateBank inserts a new bank with an empty account list. A bank id
// already in use is rejected, never shadowed.
func (r *Registry) CreateBank(bank model.Bank) (model.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bankIndex[bank.BankID]; ok {
		return model.Bank{}, ledgererror.New(ledgererror.ErrConflict,
			fmt.Sprintf("bank id %d already in use", bank.BankID), nil)
	}

	bank.AccountIDs = []int64{}
	bank.CreatedAt = time.Now()

	stored := bank
	r.banks = append(r.banks, &stored)
	r.bankIndex[bank.BankID] = &stored
	return bank, nil
}

// CreateUser inserts a new user with an empty account list. Symmetric to
// CreateBank.
func (r *Registry) CreateUser(user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.userIndex[user.UserID]; ok {
		return model.User{}, ledgererror.New(ledgererror.ErrConflict,
			fmt.Sprintf("user id %d already in use", user.UserID), nil)
	}

	user.AccountIDs = []int64{}
	user.CreatedAt = time.Now()

	stored := user
	r.users = append(r.users, &stored)
	r.userIndex[user.UserID] = &stored
	return user, nil
}

// OpenAccount creates an account against an existing bank for an existing
// user and appends the account id to both forward indexes. Both foreign keys
// are validated before anything mutates, so a failed open leaves all three
// collections untouched. The opening balance is accepted as given, any sign.
func (r *Registry) OpenAccount(accountID, bankID, userID int64, openingBalance decimal.Decimal) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bank, ok := r.bankIndex[bankID]
	if !ok {
		return model.Account{}, ledgererror.New(ledgererror.ErrNotFound,
			fmt.Sprintf("bank %d not found", bankID), nil)
	}
	user, ok := r.userIndex[userID]
	if !ok {
		return model.Account{}, ledgererror.New(ledgererror.ErrNotFound,
			fmt.Sprintf("user %d not found", userID), nil)
	}
	if _, ok := r.accountIndex[accountID]; ok {
		return model.Account{}, ledgererror.New(ledgererror.ErrConflict,
			fmt.Sprintf("account id %d already in use", accountID), nil)
	}

	account := &model.Account{
		AccountID: accountID,
		Balance:   openingBalance,
		BankID:    bankID,
		OwnerIDs:  []int64{userID},
		CreatedAt: time.Now(),
	}

	bank.AccountIDs = append(bank.AccountIDs, accountID)
	user.AccountIDs = append(user.AccountIDs, accountID)
	r.accounts = append(r.accounts, account)
	r.accountIndex[accountID] = account

	return *account, nil
}

// Account resolves a live handle to the stored account. Callers mutate the
// record through this handle, never through a copy written back later.
func (r *Registry) Account(id int64) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accountIndex[id]
	if !ok {
		return nil, ledgererror.New(ledgererror.ErrNotFound,
			fmt.Sprintf("account %d not found", id), nil)
	}
	return account, nil
}

func (r *Registry) AccountExists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.accountIndex[id]
	return ok
}

func (r *Registry) Bank(id int64) (model.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bank, ok := r.bankIndex[id]
	if !ok {
		return model.Bank{}, ledgererror.New(ledgererror.ErrNotFound,
			fmt.Sprintf("bank %d not found", id), nil)
	}
	return copyBank(bank), nil
}

func (r *Registry) User(id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.userIndex[id]
	if !ok {
		return model.User{}, ledgererror.New(ledgererror.ErrNotFound,
			fmt.Sprintf("user %d not found", id), nil)
	}
	return copyUser(user), nil
}

// AppendRequest records a money request. Requests are write-once; the
// registry only ever appends.
func (r *Registry) AppendRequest(request model.MoneyRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, request)
}

// Banks returns copies of all banks in insertion order.
func (r *Registry) Banks() []model.Bank {
	r.mu.RLock()
	defer r.mu.RUnlock()

	banks := make([]model.Bank, 0, len(r.banks))
	for _, bank := range r.banks {
		banks = append(banks, copyBank(bank))
	}
	return banks
}

// Users returns copies of all users in insertion order.
func (r *Registry) Users() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, copyUser(user))
	}
	return users
}

// Accounts returns copies of all accounts in insertion order.
func (r *Registry) Accounts() []model.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]model.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, copyAccount(account))
	}
	return accounts
}

// Requests returns copies of all money requests in insertion order.
func (r *Registry) Requests() []model.MoneyRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]model.MoneyRequest, len(r.requests))
	copy(requests, r.requests)
	return requests
}

func copyBank(bank *model.Bank) model.Bank {
	out := *bank
	out.AccountIDs = append([]int64{}, bank.AccountIDs...)
	return out
}

func copyUser(user *model.User) model.User {
	out := *user
	out.AccountIDs = append([]int64{}, user.AccountIDs...)
	return out
}

func copyAccount(account *model.Account) model.Account {
	out := *account
	out.OwnerIDs = append([]int64{}, account.OwnerIDs...)
	return out
}
