package factory

import (
	"github.com/appdotbuilder/payment-gateway-id/internal/config"
	ledgerhandler "github.com/appdotbuilder/payment-gateway-id/internal/modules/ledger/handler"
	reporthandler "github.com/appdotbuilder/payment-gateway-id/internal/modules/report/handler"
	userhandler "github.com/appdotbuilder/payment-gateway-id/internal/modules/user/handler"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Container wires repositories, usecases, and handlers once at boot.
type Container struct {
	UserHandler   *userhandler.UserHandler
	LedgerHandler *ledgerhandler.LedgerHandler
	ReportHandler *reporthandler.ReportHandler
}

func Build(cfg *config.Config, dbWrite *gorm.DB, dbRead *gorm.DB, rdb redis.UniversalClient) *Container {
	return &Container{
		UserHandler:   newUserFactory(dbWrite, dbRead),
		LedgerHandler: newLedgerFactory(cfg, dbWrite, dbRead),
		ReportHandler: newReportFactory(cfg, dbWrite, dbRead, rdb),
	}
}
