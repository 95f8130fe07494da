//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_failures_test
package dispatch_failures

import (
	"context"

	"samecity/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CountDispatchFailures(ctx context.Context) (int64, error)
}
