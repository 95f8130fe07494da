package entities

import "time"

type ActorKind string

const (
	ActorAdmin   ActorKind = "admin"
	ActorService ActorKind = "service"
	ActorSystem  ActorKind = "system"
)

type Actor struct {
	Kind ActorKind
	ID   int64
}

type ChangeType string

const (
	ChangeDeliveryCreate     ChangeType = "delivery_create"
	ChangeDeliveryClaim      ChangeType = "delivery_claim"
	ChangeDeliveryDispatch   ChangeType = "delivery_dispatch"
	ChangeDeliveryRedispatch ChangeType = "delivery_redispatch"
	ChangeDeliveryCancel     ChangeType = "delivery_cancel"
	ChangeDeliveryNotify     ChangeType = "delivery_notify"
	ChangeDeliveryConfirm    ChangeType = "delivery_confirm"
	ChangeDeliveryDestroy    ChangeType = "delivery_destroy"
)

type OrderStatusLog struct {
	ID            int64
	OrderID       int64
	ChangeType    ChangeType
	ChangeMessage string
	Actor         Actor
	CreatedAt     time.Time
}
