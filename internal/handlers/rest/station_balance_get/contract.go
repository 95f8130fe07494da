//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=station_balance_get_test
package station_balance_get

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
	Balance(ctx context.Context, merID, stationID int64) (*entities.Balance, error)
}
