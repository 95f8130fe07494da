//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_delete_test
package delivery_delete

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
	Destroy(ctx context.Context, merID, orderID int64) error
}
