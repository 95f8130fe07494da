package dada

import "samecity/internal/entities"

// order_status values sent by Dada.
var statuses = map[int]entities.DeliveryOrderStatus{
	1:    entities.DeliveryCreated, // awaiting acceptance
	2:    entities.DeliveryCreated, // awaiting pickup
	3:    entities.DeliveryInTransit,
	4:    entities.DeliveryCompleted,
	5:    entities.DeliveryCancelled,
	7:    entities.DeliveryCancelled, // expired
	8:    entities.DeliveryCreated,   // assigned
	9:    entities.DeliveryReturning,
	10:   entities.DeliveryReturned,
	100:  entities.DeliveryCourierArrived,
	1000: entities.DeliveryCancelled, // creation failed
}

func CanonicalStatus(raw int) (entities.DeliveryOrderStatus, bool) {
	s, ok := statuses[raw]
	return s, ok
}
