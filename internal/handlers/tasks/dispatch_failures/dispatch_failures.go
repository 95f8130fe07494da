package dispatch_failures

import (
	"context"
	"time"

	"samecity/pkg/logger"
)

// DispatchFailures periodically counts sales orders whose provider dispatch
// failed. Nothing is retried; the count only feeds the gauge and the log.
type DispatchFailures struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewDispatchFailures(log taskLogger, service Service, interval time.Duration) *DispatchFailures {
	return &DispatchFailures{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DispatchFailures) TTL() time.Duration {
	return d.interval
}

func (d *DispatchFailures) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	pending, err := d.service.CountDispatchFailures(ctxWithTimeout)
	if err != nil {
		return err
	}

	if pending > 0 {
		d.log.With(
			logger.NewField("pending", pending),
		).Warn("sales orders waiting after failed dispatch")
	}

	return nil
}

func (d *DispatchFailures) Info() string {
	return "dispatch failures scan"
}
