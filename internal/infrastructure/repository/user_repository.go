package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/appdotbuilder/payment-gateway-id/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserRepository is the account store: it owns user rows and their
// balances. Balance writes outside the settlement path go through
// SetBalance only.
type UserRepository struct {
	dbWrite *gorm.DB
	dbRead  *gorm.DB
}

func NewUserRepository(dbWrite *gorm.DB, dbRead *gorm.DB) *UserRepository {
	return &UserRepository{dbWrite: dbWrite, dbRead: dbRead}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.dbWrite.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.dbRead.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	var users []model.User
	err := r.dbRead.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update applies the optional-field struct field-by-field: only non-nil
// fields are written, nothing is defaulted implicitly.
func (r *UserRepository) Update(ctx context.Context, id uint64, upd model.UserUpdate) (*model.User, error) {
	values := map[string]any{"updated_at": time.Now().UTC()}
	if upd.Username != nil {
		values["username"] = *upd.Username
	}
	if upd.Email != nil {
		values["email"] = *upd.Email
	}
	if upd.FullName != nil {
		values["full_name"] = *upd.FullName
	}
	if upd.PhoneNumber != nil {
		values["phone_number"] = *upd.PhoneNumber
	}
	if upd.AccountStatus != nil {
		values["account_status"] = *upd.AccountStatus
	}

	res := r.dbWrite.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	var user model.User
	if err := r.dbWrite.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return &user, nil
}

// SetBalance overwrites the balance with an absolute value (admin
// operation). Callers must have rejected negative amounts already; the
// CHECK constraint is the last line of defense.
func (r *UserRepository) SetBalance(ctx context.Context, id uint64, amount decimal.Decimal) (*model.User, error) {
	res := r.dbWrite.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":    amount,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	var user model.User
	if err := r.dbWrite.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return &user, nil
}
