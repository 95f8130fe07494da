package geo

import "errors"

var (
	ErrGeocode          = errors.New("address not found")
	ErrUnknownFenceType = errors.New("unknown fence type")
	ErrInvalidFence     = errors.New("invalid fence")
)
