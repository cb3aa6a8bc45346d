package factory

import (
	"github.com/appdotbuilder/payment-gateway-id/internal/config"
	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/ledger/handler"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/ledger/usecase"

	"gorm.io/gorm"
)

func newLedgerFactory(cfg *config.Config, dbWrite *gorm.DB, dbRead *gorm.DB) *handler.LedgerHandler {
	userRepo := repository.NewUserRepository(dbWrite, dbRead)
	trxRepo := repository.NewTransactionRepository(dbWrite, dbRead)
	ledgerUsecase := usecase.NewLedgerUsecase(userRepo, trxRepo, cfg.Ledger)
	return handler.NewLedgerHandler(ledgerUsecase)
}
