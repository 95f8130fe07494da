package order_ready_to_ship

// readyEvent is published by the order service once a paid order is packed.
type readyEvent struct {
	OrderID int64  `json:"order_id"`
	SN      string `json:"sn"`
}
