//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_dispatch_put_test
package delivery_dispatch_put

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
	MerUpdateDispatch(ctx context.Context, req entities.DispatchRequest) error
}
