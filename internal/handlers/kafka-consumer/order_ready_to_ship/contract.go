//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_ready_to_ship_test
package order_ready_to_ship

import (
	"context"

	"samecity/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Create(ctx context.Context, orderID int64) (bool, error)
}
