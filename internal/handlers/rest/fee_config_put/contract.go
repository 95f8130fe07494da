//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fee_config_put_test
package fee_config_put

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
	SaveFeeConfig(ctx context.Context, merID int64, enabled bool, cfg entities.FeeConfig) error
}
