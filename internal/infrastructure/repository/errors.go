package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyProcessed    = errors.New("transaction already processed")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrDuplicateUser       = errors.New("username or email already taken")
	ErrInvalidInput        = errors.New("invalid input")
	// ErrConflict marks transient storage contention (serialization
	// failure, deadlock). The settlement engine retries it internally.
	ErrConflict = errors.New("storage conflict")
)

// postgres SQLSTATE codes we translate into the domain taxonomy
const (
	pgUniqueViolation   = "23505"
	pgForeignKey        = "23503"
	pgCheckViolation    = "23514"
	pgSerializationFail = "40001"
	pgDeadlockDetected  = "40P01"
)

// translate maps driver-level errors onto the sentinel taxonomy so the
// layers above only ever compare with errors.Is.
func translate(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		ErrUserNotFound, ErrTransactionNotFound, ErrAlreadyProcessed,
		ErrInsufficientFunds, ErrDuplicateUser, ErrInvalidInput, ErrConflict,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateUser
		case pgForeignKey:
			return ErrUserNotFound
		case pgCheckViolation:
			// balance >= 0 backstop fired under us
			return ErrInsufficientFunds
		case pgSerializationFail, pgDeadlockDetected:
			return ErrConflict
		}
	}
	return err
}
