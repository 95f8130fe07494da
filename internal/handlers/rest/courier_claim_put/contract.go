//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_claim_put_test
package courier_claim_put

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
	SetCourierClaim(ctx context.Context, merID int64, enabled bool) error
}
