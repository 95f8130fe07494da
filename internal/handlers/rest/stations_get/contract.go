//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stations_get_test
package stations_get

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
	ListStations(ctx context.Context, merID int64) ([]entities.DeliveryStation, error)
}
