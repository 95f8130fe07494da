//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=provider_notify_post_test
package provider_notify_post

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
	Notify(ctx context.Context, n entities.ProviderNotification) error
}

// Parser turns a provider callback body into a canonical notification.
type Parser interface {
	ParseNotification(body []byte) (entities.ProviderNotification, error)
}
