//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=station_cancel_reasons_get_test
package station_cancel_reasons_get

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
	CancelReasons(ctx context.Context, merID, stationID int64) ([]entities.CancelReason, error)
}
