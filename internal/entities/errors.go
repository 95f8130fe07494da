package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks business-rule violations that are reported back
	// to the caller and never persisted.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")

	ErrStationNotFound        = fmt.Errorf("delivery station %w", ErrNotFound)
	ErrFeeConfigNotFound      = fmt.Errorf("fee config %w", ErrNotFound)
	ErrMerchantConfigNotFound = fmt.Errorf("merchant delivery config %w", ErrNotFound)
	ErrSalesOrderNotFound     = fmt.Errorf("sales order %w", ErrNotFound)
	ErrDeliveryOrderNotFound  = fmt.Errorf("delivery order %w", ErrNotFound)

	// Callback parsing failures shared by every provider.
	ErrCallbackSignature = errors.New("callback signature mismatch")
	ErrCallbackStatus    = errors.New("callback status unknown")
)

// ProviderError is a failed call to a courier provider: transport error,
// non-2xx status or a business error code in the response body.
type ProviderError struct {
	Provider StationType
	Method   string
	Code     int
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s %s: code %d: %s", e.Provider, e.Method, e.Code, msg)
	}
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Method, msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
