package factory

import (
	"github.com/appdotbuilder/payment-gateway-id/internal/config"
	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/handler"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/store"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/usecase"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func newReportFactory(cfg *config.Config, dbWrite *gorm.DB, dbRead *gorm.DB, rdb redis.UniversalClient) *handler.ReportHandler {
	trxRepo := repository.NewTransactionRepository(dbWrite, dbRead)
	cache := store.NewRedisReportCache(rdb, cfg.Report.CacheTTL)
	reportUsecase := usecase.NewReportUsecase(trxRepo, cache)
	return handler.NewReportHandler(reportUsecase)
}
