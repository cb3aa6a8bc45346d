package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/appdotbuilder/payment-gateway-id/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository is the ledger: it owns transaction rows and
// executes the settlement's atomic unit against the write pool.
type TransactionRepository struct {
	dbWrite *gorm.DB
	dbRead  *gorm.DB
}

func NewTransactionRepository(dbWrite *gorm.DB, dbRead *gorm.DB) *TransactionRepository {
	return &TransactionRepository{dbWrite: dbWrite, dbRead: dbRead}
}

func (r *TransactionRepository) Insert(ctx context.Context, trx *model.Transaction) error {
	if err := r.dbWrite.WithContext(ctx).Create(trx).Error; err != nil {
		// FK violation means the referenced user vanished between
		// the existence check and the insert
		return translate(err)
	}
	return nil
}

func (r *TransactionRepository) Get(ctx context.Context, id uint64) (*model.Transaction, error) {
	var trx model.Transaction
	err := r.dbRead.WithContext(ctx).First(&trx, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &trx, nil
}

func (r *TransactionRepository) List(ctx context.Context, f model.TransactionFilter) ([]model.Transaction, error) {
	q := r.dbRead.WithContext(ctx).Model(&model.Transaction{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var out []model.Transaction
	err := q.Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

// Settle executes the settlement's atomic unit in a single DB
// transaction: lock the ledger row, re-check PENDING under the lock,
// lock the owner and re-check funds when the delta debits, then write
// status and balance together. Lock order is always transaction row
// first, then user row.
func (r *TransactionRepository) Settle(
	ctx context.Context,
	id uint64,
	newStatus model.TransactionStatus,
	delta decimal.Decimal,
) (*model.Transaction, error) {
	var out model.Transaction

	err := r.dbWrite.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("lock transaction: %w", err)
		}

		if out.Status != model.StatusPending {
			return ErrAlreadyProcessed
		}

		now := time.Now().UTC()

		if !delta.IsZero() {
			var owner model.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&owner, out.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return fmt.Errorf("lock user: %w", err)
			}

			newBalance := owner.Balance.Add(delta)
			if newBalance.IsNegative() {
				// authoritative funds check: the whole unit
				// aborts, the row stays PENDING
				return ErrInsufficientFunds
			}

			if err := tx.Model(&model.User{}).
				Where("id = ?", owner.ID).
				Updates(map[string]any{
					"balance":    newBalance,
					"updated_at": now,
				}).Error; err != nil {
				return fmt.Errorf("update balance: %w", err)
			}
		}

		res := tx.Model(&model.Transaction{}).
			Where("id = ? AND status = ?", id, model.StatusPending).
			Updates(map[string]any{
				"status":     newStatus,
				"updated_at": now,
			})
		if res.Error != nil {
			return fmt.Errorf("update status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}

		out.Status = newStatus
		out.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// SummarizeRange aggregates successful transactions inside [start, end]
// for the dashboard: per-type totals plus the distinct-user count. Runs
// on the read pool, no locks.
func (r *TransactionRepository) SummarizeRange(ctx context.Context, start, end time.Time) ([]model.TypeTotal, int64, error) {
	var rows []model.TypeTotal
	err := r.dbRead.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("status = ? AND created_at >= ? AND created_at <= ?",
			model.StatusSuccess, start, end).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("summarize transactions: %w", err)
	}

	var activeUsers int64
	err = r.dbRead.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("status = ? AND created_at >= ? AND created_at <= ?",
			model.StatusSuccess, start, end).
		Distinct("user_id").
		Count(&activeUsers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count active users: %w", err)
	}

	return rows, activeUsers, nil
}
