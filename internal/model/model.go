package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountBlocked   AccountStatus = "BLOCKED"
)

func (s AccountStatus) Valid() bool {
	return s == AccountActive || s == AccountSuspended || s == AccountBlocked
}

type TransactionType string

const (
	TypeTopUp      TransactionType = "TOP_UP"
	TypePayment    TransactionType = "PAYMENT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
)

func (t TransactionType) Valid() bool {
	return t == TypeTopUp || t == TypePayment || t == TypeWithdrawal
}

// Debits reports whether a successful transaction of this type takes
// money out of the owner's balance.
func (t TransactionType) Debits() bool {
	return t == TypePayment || t == TypeWithdrawal
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusSuccess   TransactionStatus = "SUCCESS"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

func (s TransactionStatus) Valid() bool {
	return s == StatusPending || s.Terminal()
}

// Terminal reports whether the status is final. PENDING is the only
// non-terminal status; once a transaction leaves it, it never changes.
func (s TransactionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusCancelled
}

type PaymentMethod string

const (
	MethodDana         PaymentMethod = "DANA"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
)

func (m PaymentMethod) Valid() bool {
	return m == MethodDana || m == MethodBankTransfer || m == MethodCreditCard
}

type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "DAILY"
	PeriodWeekly  ReportPeriod = "WEEKLY"
	PeriodMonthly ReportPeriod = "MONTHLY"
)

// User is a row in the users table. Balance is only ever mutated by the
// settlement path and the admin balance override.
type User struct {
	ID            uint64          `json:"id" gorm:"column:id;primaryKey"`
	Username      string          `json:"username" gorm:"column:username;type:VARCHAR(50);uniqueIndex;not null"`
	Email         string          `json:"email" gorm:"column:email;type:VARCHAR(255);uniqueIndex;not null"`
	FullName      string          `json:"full_name" gorm:"column:full_name;type:VARCHAR(100);not null"`
	PhoneNumber   string          `json:"phone_number" gorm:"column:phone_number;type:VARCHAR(15);not null"`
	Role          UserRole        `json:"role" gorm:"column:role;type:VARCHAR(10);not null;default:USER"`
	AccountStatus AccountStatus   `json:"account_status" gorm:"column:account_status;type:VARCHAR(10);not null;default:ACTIVE"`
	Balance       decimal.Decimal `json:"balance" gorm:"column:balance;type:numeric(15,2);not null;default:0"`
	CreatedAt     time.Time       `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (User) TableName() string { return "users" }

// Transaction is a ledger row. Type and Amount are fixed at creation;
// Status moves PENDING -> {SUCCESS, FAILED, CANCELLED} exactly once.
type Transaction struct {
	ID            uint64            `json:"id" gorm:"column:id;primaryKey"`
	UserID        uint64            `json:"user_id" gorm:"column:user_id;not null;index"`
	Type          TransactionType   `json:"type" gorm:"column:type;type:VARCHAR(10);not null"`
	Amount        decimal.Decimal   `json:"amount" gorm:"column:amount;type:numeric(15,2);not null"`
	Status        TransactionStatus `json:"status" gorm:"column:status;type:VARCHAR(10);not null;default:PENDING"`
	PaymentMethod PaymentMethod     `json:"payment_method" gorm:"column:payment_method;type:VARCHAR(15);not null"`
	Description   *string           `json:"description" gorm:"column:description;type:TEXT"`
	ReferenceID   *string           `json:"reference_id" gorm:"column:reference_id;type:TEXT"`
	CreatedAt     time.Time         `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (Transaction) TableName() string { return "transactions" }

// BalanceDelta returns the signed amount applied to the owning user's
// balance when the transaction settles to newStatus. Only SUCCESS moves
// money; FAILED and CANCELLED are balance-neutral.
func (t *Transaction) BalanceDelta(newStatus TransactionStatus) decimal.Decimal {
	if newStatus != StatusSuccess {
		return decimal.Zero
	}
	switch t.Type {
	case TypeTopUp:
		return t.Amount
	case TypePayment, TypeWithdrawal:
		return t.Amount.Neg()
	}
	return decimal.Zero
}

// TransactionFilter narrows ledger listings. Nil pointer = no filter.
type TransactionFilter struct {
	UserID *uint64
	Type   *TransactionType
	Status *TransactionStatus
	Limit  int
	Offset int
}

// UserUpdate is an explicit optional-field update: nil means the field
// is untouched, non-nil means it is written as-is. No implicit defaults.
type UserUpdate struct {
	Username      *string
	Email         *string
	FullName      *string
	PhoneNumber   *string
	AccountStatus *AccountStatus
}

func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.FullName == nil &&
		u.PhoneNumber == nil && u.AccountStatus == nil
}

// TypeTotal is one row of the dashboard aggregation: sum and count of
// successful transactions of a single type inside the report window.
type TypeTotal struct {
	Type  TransactionType
	Total decimal.Decimal
	Count int64
}
