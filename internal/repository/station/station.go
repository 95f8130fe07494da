package station

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"samecity/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, mer_id, name, phone, lat::text, lng::text, radius::text, address,
	city_code, city_name, regions, fences, business_hours, shop_id, type, scope_type,
	created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, stationModify entities.DeliveryStationModify) (int64, error) {
	model, err := FromDomainModify(&stationModify)
	if err != nil {
		return 0, fmt.Errorf("unexpected station repository create error: %w", err)
	}

	values := map[string]any{
		"mer_id":     model.MerID,
		"name":       model.Name,
		"lat":        model.Lat,
		"lng":        model.Lng,
		"address":    model.Address,
		"type":       model.Type,
		"scope_type": model.ScopeType,
	}
	optional := map[string]any{
		"phone":          model.Phone,
		"radius":         model.Radius,
		"city_code":      model.CityCode,
		"city_name":      model.CityName,
		"business_hours": model.BusinessHours,
		"shop_id":        model.ShopID,
	}
	for column, value := range optional {
		if v, ok := value.(*string); ok && v != nil {
			values[column] = v
		}
	}
	if model.Regions != nil {
		values["regions"] = model.Regions
	}
	if model.Fences != nil {
		values["fences"] = model.Fences
	}

	query, args, err := qb.Insert("delivery_stations").
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected station repository create error: %w", err)
	}

	var id int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("unexpected station repository create error: %w", err)
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, stationModify entities.DeliveryStationModify) (*entities.DeliveryStation, error) {
	model, err := FromDomainModify(&stationModify)
	if err != nil {
		return nil, fmt.Errorf("unexpected station repository update error: %w", err)
	}

	builder := qb.
		Update("delivery_stations")

	if model.Name != nil {
		builder = builder.Set("name", model.Name)
	}
	if model.Phone != nil {
		builder = builder.Set("phone", model.Phone)
	}
	if model.Lat != nil {
		builder = builder.Set("lat", model.Lat).Set("lng", model.Lng)
	}
	if model.Radius != nil {
		builder = builder.Set("radius", model.Radius)
	}
	if model.Address != nil {
		builder = builder.Set("address", model.Address)
	}
	if model.CityCode != nil {
		builder = builder.Set("city_code", model.CityCode)
	}
	if model.CityName != nil {
		builder = builder.Set("city_name", model.CityName)
	}
	if model.Regions != nil {
		builder = builder.Set("regions", model.Regions)
	}
	if model.Fences != nil {
		builder = builder.Set("fences", model.Fences)
	}
	if model.BusinessHours != nil {
		builder = builder.Set("business_hours", model.BusinessHours)
	}
	if model.ShopID != nil {
		builder = builder.Set("shop_id", model.ShopID)
	}
	if model.Type != nil {
		builder = builder.Set("type", model.Type)
	}
	if model.ScopeType != nil {
		builder = builder.Set("scope_type", model.ScopeType)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": model.ID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected station repository update error: %w", err)
	}

	station, err := scan(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrStationNotFound
		}
		return nil, fmt.Errorf("unexpected station repository update error: %w", err)
	}
	return station, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryStation, error) {
	query := `SELECT ` + columns + `
		FROM delivery_stations
		WHERE id = $1`

	station, err := scan(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrStationNotFound
		}
		return nil, fmt.Errorf("unexpected station repository getbyid error: %w", err)
	}
	return station, nil
}

func (r *Repository) ListByMerchant(ctx context.Context, merID int64) ([]entities.DeliveryStation, error) {
	query := `SELECT ` + columns + `
		FROM delivery_stations
		WHERE mer_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, merID)
	if err != nil {
		return nil, fmt.Errorf("unexpected station repository list error: %w", err)
	}
	defer rows.Close()

	stations := make([]entities.DeliveryStation, 0, 4)
	for rows.Next() {
		station, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected station repository list error: %w", err)
		}
		stations = append(stations, *station)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected station repository list error: %w", err)
	}
	return stations, nil
}

func scan(row pgx.Row) (*entities.DeliveryStation, error) {
	var model StationDB
	err := row.Scan(
		&model.ID,
		&model.MerID,
		&model.Name,
		&model.Phone,
		&model.Lat,
		&model.Lng,
		&model.Radius,
		&model.Address,
		&model.CityCode,
		&model.CityName,
		&model.Regions,
		&model.Fences,
		&model.BusinessHours,
		&model.ShopID,
		&model.Type,
		&model.ScopeType,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&model)
}
