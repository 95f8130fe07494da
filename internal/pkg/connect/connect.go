package connect

import (
	"context"
	"fmt"

	"samecity/pkg/logger"
	"samecity/pkg/retrier"
	"samecity/pkg/retrier/backoff_adapter"
)

// Wait pings an infrastructure dependency through r until it answers.
// Startup blocks here while postgres, redis or kafka are still booting.
func Wait(ctx context.Context, log logger.Logger, r retrier.Retrier, name string, ping func(ctx context.Context) error) error {
	var attempt uint64
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting " + name + " connection")

		return ping(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error(name + " connection failed after retries")
		return fmt.Errorf("failed to connect to %s: %w", name, err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info(name + " connection established")
	return nil
}

// WaitDefault is Wait with the startup backoff from retrier.ConnectConfig.
func WaitDefault(ctx context.Context, log logger.Logger, name string, ping func(ctx context.Context) error) error {
	return Wait(ctx, log, backoff_adapter.New(retrier.ConnectConfig()), name, ping)
}
