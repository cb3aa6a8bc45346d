package db

import (
	"fmt"

	"github.com/appdotbuilder/payment-gateway-id/pkg/logger"

	"gorm.io/gorm"
)

// Migrate creates tables and indexes idempotently on the write pool.
// The balance CHECK is the storage-level backstop for the non-negative
// invariant; the settlement path enforces it first.
func Migrate(db *gorm.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id             BIGSERIAL     PRIMARY KEY,
			username       VARCHAR(50)   NOT NULL UNIQUE,
			email          VARCHAR(255)  NOT NULL UNIQUE,
			full_name      VARCHAR(100)  NOT NULL,
			phone_number   VARCHAR(15)   NOT NULL,
			role           VARCHAR(10)   NOT NULL DEFAULT 'USER',
			account_status VARCHAR(10)   NOT NULL DEFAULT 'ACTIVE',
			balance        NUMERIC(15,2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
			created_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id             BIGSERIAL     PRIMARY KEY,
			user_id        BIGINT        NOT NULL REFERENCES users(id),
			type           VARCHAR(10)   NOT NULL,
			amount         NUMERIC(15,2) NOT NULL CHECK (amount > 0),
			status         VARCHAR(10)   NOT NULL DEFAULT 'PENDING',
			payment_method VARCHAR(15)   NOT NULL,
			description    TEXT,
			reference_id   TEXT,
			created_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_id
			ON transactions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_status_created_at
			ON transactions(status, created_at)`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	logger.Info("✅ Migrations completed")
	return nil
}
