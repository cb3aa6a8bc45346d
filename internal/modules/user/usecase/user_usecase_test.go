package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/model"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/user/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[uint64]*model.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint64]*model.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	s.nextID++
	user.ID = s.nextID
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) Get(ctx context.Context, id uint64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.User
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeUserStore) Update(ctx context.Context, id uint64, upd model.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.PhoneNumber != nil {
		u.PhoneNumber = *upd.PhoneNumber
	}
	if upd.AccountStatus != nil {
		u.AccountStatus = *upd.AccountStatus
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) SetBalance(ctx context.Context, id uint64, amount decimal.Decimal) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.Balance = amount
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func createUser(t *testing.T, u *UserUsecase, username, email string) *model.User {
	t.Helper()
	user, err := u.CreateUser(context.Background(), dto.CreateUserInput{
		Username:    username,
		Email:       email,
		FullName:    "Test User",
		PhoneNumber: "08123456789",
	})
	require.NoError(t, err)
	return user
}

func TestCreateUserDefaults(t *testing.T) {
	u := NewUserUsecase(newFakeUserStore())

	user := createUser(t, u, "budi", "budi@example.com")
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, model.AccountActive, user.AccountStatus)
	assert.True(t, user.Balance.IsZero())
}

func TestCreateUserDuplicate(t *testing.T) {
	u := NewUserUsecase(newFakeUserStore())

	createUser(t, u, "budi", "budi@example.com")
	_, err := u.CreateUser(context.Background(), dto.CreateUserInput{
		Username:    "budi",
		Email:       "other@example.com",
		FullName:    "Someone Else",
		PhoneNumber: "08123456780",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUpdateUserPartialFields(t *testing.T) {
	store := newFakeUserStore()
	u := NewUserUsecase(store)

	user := createUser(t, u, "budi", "budi@example.com")

	status := string(model.AccountSuspended)
	updated, err := u.UpdateUser(context.Background(), user.ID, dto.UpdateUserInput{
		AccountStatus: &status,
	})
	require.NoError(t, err)

	// only the present field changed
	assert.Equal(t, model.AccountSuspended, updated.AccountStatus)
	assert.Equal(t, user.Username, updated.Username)
	assert.Equal(t, user.Email, updated.Email)
}

func TestUpdateUserNoFields(t *testing.T) {
	u := NewUserUsecase(newFakeUserStore())

	user := createUser(t, u, "budi", "budi@example.com")
	_, err := u.UpdateUser(context.Background(), user.ID, dto.UpdateUserInput{})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestSetBalance(t *testing.T) {
	u := NewUserUsecase(newFakeUserStore())

	user := createUser(t, u, "budi", "budi@example.com")

	updated, err := u.SetBalance(context.Background(), user.ID, dto.SetBalanceInput{Amount: 750.25})
	require.NoError(t, err)
	assert.Equal(t, "750.25", updated.Balance.StringFixed(2))

	_, err = u.SetBalance(context.Background(), user.ID, dto.SetBalanceInput{Amount: -1})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}
