package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries caps attempts after the first one; zero means only
	// MaxElapsedTime bounds the loop.
	MaxRetries uint64

	// nil retries every error.
	ShouldRetry ShouldRetryFunc

	// OnRetry runs before each wait with the error that caused it.
	OnRetry func(err error, wait time.Duration)
}

// ConnectConfig is used when dialing infrastructure at startup.
func ConnectConfig() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
