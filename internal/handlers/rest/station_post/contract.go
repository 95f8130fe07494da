//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=station_post_test
package station_post

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
	CreateStation(ctx context.Context, modify entities.DeliveryStationModify) (int64, error)
}
