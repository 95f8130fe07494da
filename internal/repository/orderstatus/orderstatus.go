package orderstatus

import (
	"context"
	"fmt"

	"samecity/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create appends a row to the sales order audit trail.
func (r *Repository) Create(ctx context.Context, log entities.OrderStatusLog) (*entities.OrderStatusLog, error) {
	model := FromDomain(&log)

	query := `
		INSERT INTO order_status_logs (order_id, change_type, change_message, actor_kind, actor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_id, change_type, change_message, actor_kind, actor_id, created_at
	`

	var created StatusLogDB
	err := r.querier.QueryRow(ctx, query,
		model.OrderID,
		model.ChangeType,
		model.ChangeMessage,
		model.ActorKind,
		model.ActorID,
	).Scan(
		&created.ID,
		&created.OrderID,
		&created.ChangeType,
		&created.ChangeMessage,
		&created.ActorKind,
		&created.ActorID,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order status repository create error: %w", err)
	}

	return ToDomain(&created), nil
}
