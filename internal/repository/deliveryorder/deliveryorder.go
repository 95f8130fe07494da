package deliveryorder

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"samecity/internal/entities"
	"samecity/internal/repository"
	"samecity/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, order_id, mer_id, station_id, station_type, status, origin_id,
	provider_order_code, from_lat::text, from_lng::text, to_lat::text, to_lng::text,
	from_address, to_address, distance::text, fee::text, deduct_fee::text, service_id,
	courier_name, courier_phone, cancel_reason, finish_code, created_at, updated_at`

const constraintOriginID = "delivery_orders_origin_id_key"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	query, args, err := qb.Insert("delivery_orders").
		SetMap(setMap(orderModify)).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository create error: %w", err)
	}

	order, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, conflictError(err)
		}
		return nil, fmt.Errorf("unexpected delivery order repository create error: %w", err)
	}
	return order, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	if orderModify.ID == nil {
		return nil, fmt.Errorf("unexpected delivery order repository update error: missing id")
	}

	values := setMap(orderModify)
	values["updated_at"] = sq.Expr("NOW()")

	query, args, err := qb.Update("delivery_orders").
		SetMap(values).
		Where(sq.Eq{"id": *orderModify.ID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository update error: %w", err)
	}

	order, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDeliveryOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, conflictError(err)
		}
		return nil, fmt.Errorf("unexpected delivery order repository update error: %w", err)
	}
	return order, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM delivery_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrDeliveryOrderNotFound
	}
	return nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) (*entities.DeliveryOrder, error) {
	return r.getOne(ctx, "getbyorderid", `WHERE order_id = $1`, orderID)
}

func (r *Repository) GetByOrderIDForUpdate(ctx context.Context, orderID int64) (*entities.DeliveryOrder, error) {
	return r.getOne(ctx, "getbyorderidforupdate", `WHERE order_id = $1 FOR UPDATE`, orderID)
}

func (r *Repository) GetByOriginIDForUpdate(ctx context.Context, originID string) (*entities.DeliveryOrder, error) {
	return r.getOne(ctx, "getbyoriginidforupdate", `WHERE origin_id = $1 FOR UPDATE`, originID)
}

func (r *Repository) getOne(ctx context.Context, op, where string, arg any) (*entities.DeliveryOrder, error) {
	query := `SELECT ` + columns + `
		FROM delivery_orders
		` + where

	order, err := scan(r.querier.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDeliveryOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery order repository %s error: %w", op, err)
	}
	return order, nil
}

func scan(row pgx.Row) (*entities.DeliveryOrder, error) {
	var model DeliveryOrderDB
	err := row.Scan(
		&model.ID,
		&model.OrderID,
		&model.MerID,
		&model.StationID,
		&model.StationType,
		&model.Status,
		&model.OriginID,
		&model.ProviderOrderCode,
		&model.FromLat,
		&model.FromLng,
		&model.ToLat,
		&model.ToLng,
		&model.FromAddress,
		&model.ToAddress,
		&model.Distance,
		&model.Fee,
		&model.DeductFee,
		&model.ServiceID,
		&model.CourierName,
		&model.CourierPhone,
		&model.CancelReason,
		&model.FinishCode,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&model)
}

// conflictError maps a unique violation on delivery_orders. A clash on
// origin_id means the provider-facing id was reused by another order.
func conflictError(err error) error {
	if repository.ConstraintName(err) == constraintOriginID {
		return fmt.Errorf("origin id already used: %w", delivery.ErrDeliveryOrderExists)
	}
	return delivery.ErrDeliveryOrderExists
}
