package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/appdotbuilder/payment-gateway-id/internal/config"
	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/model"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/ledger/dto"
	"github.com/appdotbuilder/payment-gateway-id/pkg/logger"
	"github.com/appdotbuilder/payment-gateway-id/pkg/money"

	"github.com/shopspring/decimal"
)

const defaultListLimit = 50

// AccountStore is what the settlement engine needs from the user side:
// a consistent existence/balance read.
type AccountStore interface {
	Get(ctx context.Context, id uint64) (*model.User, error)
}

// LedgerStore owns transaction rows. Settle is the atomic unit of
// settlement: status transition and balance delta commit together or
// not at all.
type LedgerStore interface {
	Insert(ctx context.Context, trx *model.Transaction) error
	Get(ctx context.Context, id uint64) (*model.Transaction, error)
	List(ctx context.Context, f model.TransactionFilter) ([]model.Transaction, error)
	Settle(ctx context.Context, id uint64, newStatus model.TransactionStatus, delta decimal.Decimal) (*model.Transaction, error)
}

// LedgerUsecase is the settlement engine: transaction creation with
// balance validation and the PENDING -> terminal transition.
type LedgerUsecase struct {
	accounts   AccountStore
	ledger     LedgerStore
	maxRetries int
	backoff    time.Duration
}

func NewLedgerUsecase(accounts AccountStore, ledger LedgerStore, cfg *config.LedgerConfig) *LedgerUsecase {
	return &LedgerUsecase{
		accounts:   accounts,
		ledger:     ledger,
		maxRetries: cfg.SettleMaxRetries,
		backoff:    cfg.SettleBackoff,
	}
}

// CreateTransaction validates the draft and persists it PENDING. No
// balance is touched here: the economic effect is deferred to Settle.
// The funds pre-check for debiting types is advisory only; Settle
// re-checks under lock.
func (u *LedgerUsecase) CreateTransaction(ctx context.Context, in dto.CreateTransactionInput) (*model.Transaction, error) {
	trxType := model.TransactionType(in.Type)
	method := model.PaymentMethod(in.PaymentMethod)
	if !trxType.Valid() || !method.Valid() {
		return nil, fmt.Errorf("%w: unknown type or payment method", repository.ErrInvalidInput)
	}

	amount := money.FromFloat(in.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", repository.ErrInvalidInput)
	}

	user, err := u.accounts.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if trxType.Debits() && user.Balance.LessThan(amount) {
		return nil, repository.ErrInsufficientFunds
	}

	now := time.Now().UTC()
	trx := &model.Transaction{
		UserID:        user.ID,
		Type:          trxType,
		Amount:        amount,
		Status:        model.StatusPending,
		PaymentMethod: method,
		Description:   in.Description,
		ReferenceID:   in.ReferenceID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.ledger.Insert(ctx, trx); err != nil {
		return nil, err
	}
	return trx, nil
}

// Settle transitions a pending transaction to a terminal status and,
// for SUCCESS, applies its balance delta. Transient storage conflicts
// are retried with doubling backoff; business rejections surface
// verbatim and leave the row PENDING.
func (u *LedgerUsecase) Settle(ctx context.Context, id uint64, target model.TransactionStatus) (*model.Transaction, error) {
	if !target.Terminal() {
		return nil, fmt.Errorf("%w: %q is not a terminal status", repository.ErrInvalidInput, target)
	}

	// fast-fail reads; the authoritative checks repeat under lock
	trx, err := u.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if trx.Status != model.StatusPending {
		return nil, repository.ErrAlreadyProcessed
	}

	delta := trx.BalanceDelta(target)

	backoff := u.backoff
	for attempt := 0; ; attempt++ {
		settled, err := u.ledger.Settle(ctx, id, target, delta)
		if err == nil {
			return settled, nil
		}
		if !errors.Is(err, repository.ErrConflict) || attempt >= u.maxRetries {
			return nil, err
		}

		logger.Warnf("settle conflict on transaction %d, retry %d/%d",
			id, attempt+1, u.maxRetries)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (u *LedgerUsecase) GetTransaction(ctx context.Context, id uint64) (*model.Transaction, error) {
	return u.ledger.Get(ctx, id)
}

// ListTransactions is a read passthrough with optional type/status/user
// filters, newest first.
func (u *LedgerUsecase) ListTransactions(ctx context.Context, in dto.ListTransactionsInput) ([]model.Transaction, error) {
	f := model.TransactionFilter{
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if in.UserID != 0 {
		id := in.UserID
		f.UserID = &id
	}
	if in.Type != "" {
		t := model.TransactionType(in.Type)
		f.Type = &t
	}
	if in.Status != "" {
		s := model.TransactionStatus(in.Status)
		f.Status = &s
	}
	return u.ledger.List(ctx, f)
}
