package station

import (
	"fmt"

	"samecity/internal/entities"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", entities.ErrValidation)
	ErrInvalidMerchantID     = fmt.Errorf("%w: invalid merchant id", entities.ErrValidation)
	ErrInvalidStationID      = fmt.Errorf("%w: invalid station id", entities.ErrValidation)
	ErrInvalidName           = fmt.Errorf("%w: invalid name", entities.ErrValidation)
	ErrInvalidPhone          = fmt.Errorf("%w: invalid phone", entities.ErrValidation)
	ErrInvalidLocation       = fmt.Errorf("%w: invalid location", entities.ErrValidation)
	ErrInvalidRadius         = fmt.Errorf("%w: radius must be positive", entities.ErrValidation)
	ErrInvalidType           = fmt.Errorf("%w: invalid station type", entities.ErrValidation)
	ErrInvalidScope          = fmt.Errorf("%w: invalid delivery scope", entities.ErrValidation)
	ErrMissingRegions        = fmt.Errorf("%w: region scope needs at least one region", entities.ErrValidation)
	ErrMissingFences         = fmt.Errorf("%w: fence scope needs at least one fence", entities.ErrValidation)
	ErrInvalidFence          = fmt.Errorf("%w: invalid fence", entities.ErrValidation)
	ErrMissingProviderShop   = fmt.Errorf("%w: provider station needs shop id and city code", entities.ErrValidation)
)
