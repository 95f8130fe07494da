package orderstatus

import "samecity/internal/entities"

func ToDomain(l *StatusLogDB) *entities.OrderStatusLog {
	if l == nil {
		return nil
	}

	return &entities.OrderStatusLog{
		ID:            l.ID,
		OrderID:       l.OrderID,
		ChangeType:    entities.ChangeType(l.ChangeType),
		ChangeMessage: l.ChangeMessage,
		Actor: entities.Actor{
			Kind: entities.ActorKind(l.ActorKind),
			ID:   l.ActorID,
		},
		CreatedAt: l.CreatedAt,
	}
}

func FromDomain(l *entities.OrderStatusLog) *StatusLogDB {
	if l == nil {
		return nil
	}

	return &StatusLogDB{
		ID:            l.ID,
		OrderID:       l.OrderID,
		ChangeType:    string(l.ChangeType),
		ChangeMessage: l.ChangeMessage,
		ActorKind:     string(l.Actor.Kind),
		ActorID:       l.Actor.ID,
		CreatedAt:     l.CreatedAt,
	}
}
