package geocoder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"samecity/internal/geo"
	"samecity/internal/pkg/config"
	"samecity/pkg/retrier"
)

const pathGeocode = "/v3/geocode/geo"

// Gateway resolves postal addresses through an AMap-compatible geocoding
// API. Transport errors and 5xx responses are retried, anything else is
// final for the given address.
type Gateway struct {
	client  *resty.Client
	key     string
	timeout time.Duration
	retrier retrier.Retrier
}

func New(cfg config.Geocoder, r retrier.Retrier) *Gateway {
	return &Gateway{
		client:  resty.New().SetBaseURL(cfg.BaseURL),
		key:     cfg.Key,
		timeout: cfg.Timeout,
		retrier: r,
	}
}

// RetryConfig is the backoff used for geocoding calls.
func RetryConfig() retrier.Config {
	return retrier.Config{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  5 * time.Second,
		Randomization:   0.2,
		Multiplier:      2,
		MaxRetries:      2,
		ShouldRetry:     IsRetryable,
		OnRetry: func(error, time.Duration) {
			GeocodeRetriesTotal.Inc()
		},
	}
}

type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func IsRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}

func (g *Gateway) Resolve(ctx context.Context, address geo.Address) (geo.Point, error) {
	query := strings.TrimSpace(address.String())
	if query == "" {
		return geo.Point{}, fmt.Errorf("%w: empty address", geo.ErrGeocode)
	}

	var result geocodeResponse
	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		if g.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}

		resp, err := g.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"key":     g.key,
				"address": query,
				"city":    address.City,
			}).
			SetResult(&result).
			Get(pathGeocode)
		if err != nil {
			return &retryableError{err: err}
		}

		if resp.StatusCode() >= http.StatusInternalServerError {
			return &retryableError{err: fmt.Errorf("status %d", resp.StatusCode())}
		}
		if resp.IsError() {
			return fmt.Errorf("status %d", resp.StatusCode())
		}
		return nil
	})
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: %q: %w", geo.ErrGeocode, query, err)
	}

	if result.Status != statusOK {
		return geo.Point{}, fmt.Errorf("%w: %q: %s", geo.ErrGeocode, query, result.Info)
	}
	if len(result.Geocodes) == 0 {
		return geo.Point{}, fmt.Errorf("%w: %q", geo.ErrGeocode, query)
	}

	point, err := parseLocation(result.Geocodes[0].Location)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: %q: %w", geo.ErrGeocode, query, err)
	}
	return point, nil
}

func parseLocation(location string) (geo.Point, error) {
	lng, lat, ok := strings.Cut(location, ",")
	if !ok {
		return geo.Point{}, fmt.Errorf("malformed location %q", location)
	}

	lngDec, err := decimal.NewFromString(strings.TrimSpace(lng))
	if err != nil {
		return geo.Point{}, fmt.Errorf("parse longitude: %w", err)
	}
	latDec, err := decimal.NewFromString(strings.TrimSpace(lat))
	if err != nil {
		return geo.Point{}, fmt.Errorf("parse latitude: %w", err)
	}

	point := geo.Point{Lat: latDec, Lng: lngDec}
	if !point.Valid() {
		return geo.Point{}, fmt.Errorf("location %q out of range", location)
	}
	return point, nil
}
