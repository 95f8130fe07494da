package delivery

import (
	"fmt"

	"samecity/internal/entities"
)

var (
	ErrInvalidOrderID         = fmt.Errorf("%w: invalid order id", entities.ErrValidation)
	ErrInvalidServiceID       = fmt.Errorf("%w: invalid service id", entities.ErrValidation)
	ErrInvalidStatus          = fmt.Errorf("%w: invalid delivery status", entities.ErrValidation)
	ErrInvalidOrderStatus     = fmt.Errorf("%w: sales order is not in a dispatchable status", entities.ErrValidation)
	ErrStationNotBound        = fmt.Errorf("%w: sales order has no delivery station", entities.ErrValidation)
	ErrStationBoundToProvider = fmt.Errorf("%w: station is bound to a courier provider, use provider sync instead", entities.ErrValidation)
	ErrCourierClaimDisabled   = fmt.Errorf("%w: courier claim is disabled for this merchant", entities.ErrValidation)
	ErrDeliveryOrderExists    = fmt.Errorf("%w: sales order already has an active delivery order", entities.ErrValidation)
	ErrAlreadyCancelled       = fmt.Errorf("%w: delivery order already cancelled", entities.ErrValidation)
	ErrAlreadyCompleted       = fmt.Errorf("%w: delivery order already completed", entities.ErrValidation)
	ErrAlreadyConfirmed       = fmt.Errorf("%w: sales order already awaiting review", entities.ErrValidation)
	ErrDeliveryOrderActive    = fmt.Errorf("%w: only cancelled or completed delivery orders can be removed", entities.ErrValidation)
	ErrNotInTransit           = fmt.Errorf("%w: delivery order is not with a courier", entities.ErrValidation)
)
