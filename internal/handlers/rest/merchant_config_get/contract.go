//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=merchant_config_get_test
package merchant_config_get

import (
	"context"

	"samecity/internal/entities"
	"samecity/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MerchantConfig(ctx context.Context, merID int64) (*entities.MerchantConfig, error)
}
