package orderstatus

import "time"

type StatusLogDB struct {
	ID            int64
	OrderID       int64
	ChangeType    string
	ChangeMessage string
	ActorKind     string
	ActorID       int64
	CreatedAt     time.Time
}
