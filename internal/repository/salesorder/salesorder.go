package salesorder

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"samecity/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, mer_id, order_sn, status, delivery_type, enable_assigned, sync_status,
	sync_desc, station_id, receiver_name, receiver_phone, province, city, district,
	address_detail, province_id, city_id, district_id, lat::text, lng::text,
	total_price::text, total_weight::text, courier_name, courier_phone, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.SalesOrder, error) {
	return r.get(ctx, "getbyid", `WHERE id = $1`, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.SalesOrder, error) {
	return r.get(ctx, "getbyidforupdate", `WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) Update(ctx context.Context, orderModify entities.SalesOrderModify) (*entities.SalesOrder, error) {
	if orderModify.ID == nil {
		return nil, fmt.Errorf("unexpected sales order repository update error: missing id")
	}

	values := setMap(orderModify)
	values["updated_at"] = sq.Expr("NOW()")

	query, args, err := qb.Update("sales_orders").
		SetMap(values).
		Where(sq.Eq{"id": *orderModify.ID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected sales order repository update error: %w", err)
	}

	order, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSalesOrderNotFound
		}
		return nil, fmt.Errorf("unexpected sales order repository update error: %w", err)
	}
	return order, nil
}

// CountDispatchFailures counts orders still waiting for shipment whose last
// provider dispatch failed.
func (r *Repository) CountDispatchFailures(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM sales_orders
		WHERE sync_status = $1 AND status = $2`

	var count int64
	err := r.querier.QueryRow(ctx, query,
		int16(entities.SyncFailed),
		int16(entities.SalesAwaitingShipment),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected sales order repository countdispatchfailures error: %w", err)
	}
	return count, nil
}

func (r *Repository) get(ctx context.Context, op, where string, id int64) (*entities.SalesOrder, error) {
	query := `SELECT ` + columns + `
		FROM sales_orders
		` + where

	order, err := scan(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSalesOrderNotFound
		}
		return nil, fmt.Errorf("unexpected sales order repository %s error: %w", op, err)
	}
	return order, nil
}

func scan(row pgx.Row) (*entities.SalesOrder, error) {
	var model SalesOrderDB
	err := row.Scan(
		&model.ID,
		&model.MerID,
		&model.OrderSN,
		&model.Status,
		&model.DeliveryType,
		&model.EnableAssigned,
		&model.SyncStatus,
		&model.SyncDesc,
		&model.StationID,
		&model.ReceiverName,
		&model.ReceiverPhone,
		&model.Province,
		&model.City,
		&model.District,
		&model.AddressDetail,
		&model.ProvinceID,
		&model.CityID,
		&model.DistrictID,
		&model.Lat,
		&model.Lng,
		&model.TotalPrice,
		&model.TotalWeight,
		&model.CourierName,
		&model.CourierPhone,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&model)
}
