package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/model"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/user/dto"
	"github.com/appdotbuilder/payment-gateway-id/pkg/money"

	"github.com/shopspring/decimal"
)

const defaultListLimit = 50

// UserStore is the account-store contract the user module needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uint64) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]model.User, error)
	Update(ctx context.Context, id uint64, upd model.UserUpdate) (*model.User, error)
	SetBalance(ctx context.Context, id uint64, amount decimal.Decimal) (*model.User, error)
}

type UserUsecase struct {
	store UserStore
}

func NewUserUsecase(store UserStore) *UserUsecase {
	return &UserUsecase{store: store}
}

// CreateUser onboards a user with a zero balance and ACTIVE status.
func (u *UserUsecase) CreateUser(ctx context.Context, in dto.CreateUserInput) (*model.User, error) {
	role := model.RoleUser
	if in.Role != "" {
		role = model.UserRole(in.Role)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", repository.ErrInvalidInput, in.Role)
	}

	now := time.Now().UTC()
	user := &model.User{
		Username:      in.Username,
		Email:         in.Email,
		FullName:      in.FullName,
		PhoneNumber:   in.PhoneNumber,
		Role:          role,
		AccountStatus: model.AccountActive,
		Balance:       decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	return u.store.Get(ctx, id)
}

func (u *UserUsecase) ListUsers(ctx context.Context, in dto.ListUsersInput) ([]model.User, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return u.store.List(ctx, limit, in.Offset)
}

// UpdateUser applies a partial update; absent fields stay untouched.
func (u *UserUsecase) UpdateUser(ctx context.Context, id uint64, in dto.UpdateUserInput) (*model.User, error) {
	upd := model.UserUpdate{
		Username:    in.Username,
		Email:       in.Email,
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
	}
	if in.AccountStatus != nil {
		status := model.AccountStatus(*in.AccountStatus)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown account status %q", repository.ErrInvalidInput, *in.AccountStatus)
		}
		upd.AccountStatus = &status
	}
	if upd.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", repository.ErrInvalidInput)
	}
	return u.store.Update(ctx, id, upd)
}

// SetBalance overwrites a user's balance with an absolute value. Admin
// operation outside the settlement path; negative values are rejected
// to keep the balance invariant.
func (u *UserUsecase) SetBalance(ctx context.Context, id uint64, in dto.SetBalanceInput) (*model.User, error) {
	amount := money.FromFloat(in.Amount)
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be negative", repository.ErrInvalidInput)
	}
	return u.store.SetBalance(ctx, id, amount)
}
