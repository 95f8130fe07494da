//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=station_put_test
package station_put

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
	UpdateStation(ctx context.Context, merID int64, modify entities.DeliveryStationModify) (*entities.DeliveryStation, error)
}
