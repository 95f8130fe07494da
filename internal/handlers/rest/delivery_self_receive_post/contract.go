//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_self_receive_post_test
package delivery_self_receive_post

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
	SelfReceive(ctx context.Context, serviceID, orderID int64) error
}
