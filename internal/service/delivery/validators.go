package delivery

import "samecity/internal/entities"

func isValidID(id int64) bool {
	return id > 0
}

// ownedBy treats merID == 0 as "any merchant" for system callers.
func ownedBy(merID, owner int64) bool {
	return merID == 0 || merID == owner
}

func validateCancel(order *entities.DeliveryOrder) error {
	switch order.Status {
	case entities.DeliveryCancelled:
		return ErrAlreadyCancelled
	case entities.DeliveryCompleted:
		return ErrAlreadyCompleted
	default:
		return nil
	}
}
