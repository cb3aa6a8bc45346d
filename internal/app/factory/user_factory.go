package factory

import (
	"github.com/appdotbuilder/payment-gateway-id/internal/infrastructure/repository"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/user/handler"
	"github.com/appdotbuilder/payment-gateway-id/internal/modules/user/usecase"

	"gorm.io/gorm"
)

func newUserFactory(dbWrite *gorm.DB, dbRead *gorm.DB) *handler.UserHandler {
	userRepo := repository.NewUserRepository(dbWrite, dbRead)
	userUsecase := usecase.NewUserUsecase(userRepo)
	return handler.NewUserHandler(userUsecase)
}
