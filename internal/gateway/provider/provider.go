package provider

import (
	"context"
	"errors"
	"time"

	"samecity/internal/entities"
)

// Execute runs fn under timeout and records request metrics. Any error
// that is not already a ProviderError is wrapped into one, so callers only
// ever see the typed error.
func Execute(
	ctx context.Context,
	timeout time.Duration,
	provider entities.StationType,
	method string,
	fn func(ctx context.Context) error,
) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	RequestDuration.WithLabelValues(provider.String(), method, outcome).Observe(time.Since(start).Seconds())

	if err == nil {
		return nil
	}

	var pe *entities.ProviderError
	if !errors.As(err, &pe) {
		pe = &entities.ProviderError{
			Provider: provider,
			Method:   method,
			Err:      err,
		}
		err = pe
	}
	ErrorsTotal.WithLabelValues(provider.String(), method, errorKind(pe)).Inc()

	return err
}

func errorKind(pe *entities.ProviderError) string {
	switch {
	case errors.Is(pe.Err, context.DeadlineExceeded):
		return "timeout"
	case pe.Code != 0:
		return "business"
	default:
		return "transport"
	}
}
