package uu

import "samecity/internal/entities"

// state values sent by UU.
var statuses = map[int]entities.DeliveryOrderStatus{
	1:  entities.DeliveryCreated, // placed
	3:  entities.DeliveryCreated, // courier accepted
	4:  entities.DeliveryCourierArrived,
	5:  entities.DeliveryInTransit, // picked up
	6:  entities.DeliveryInTransit, // arriving
	10: entities.DeliveryCompleted,
	-1: entities.DeliveryCancelled,
}

func CanonicalStatus(raw int) (entities.DeliveryOrderStatus, bool) {
	s, ok := statuses[raw]
	return s, ok
}
