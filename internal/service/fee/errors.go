package fee

import (
	"fmt"

	"samecity/internal/entities"
)

var (
	ErrBelowMinimumOrder  = fmt.Errorf("%w: order total is below the minimum delivery amount", entities.ErrValidation)
	ErrOutOfDeliveryRange = fmt.Errorf("%w: destination is out of the delivery range", entities.ErrValidation)
	ErrAddressNotFound    = fmt.Errorf("%w: address not found", entities.ErrValidation)
	ErrInvalidRequest     = fmt.Errorf("%w: invalid fee request", entities.ErrValidation)
	ErrInvalidFeeConfig   = fmt.Errorf("%w: invalid fee config", entities.ErrValidation)
)
