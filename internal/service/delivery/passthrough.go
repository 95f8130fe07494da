package delivery

import (
	"context"
	"fmt"

	"samecity/internal/entities"
)

func (d *Delivery) CancelReasons(ctx context.Context, merID, stationID int64) ([]entities.CancelReason, error) {
	station, err := d.ownStation(ctx, merID, stationID)
	if err != nil {
		return nil, err
	}

	reasons, err := d.providers.Get(station.Type).ListCancelReasons(ctx, *station)
	if err != nil {
		return nil, fmt.Errorf("list cancel reasons: %w", err)
	}
	return reasons, nil
}

func (d *Delivery) Cities(ctx context.Context, merID, stationID int64) ([]entities.City, error) {
	station, err := d.ownStation(ctx, merID, stationID)
	if err != nil {
		return nil, err
	}

	cities, err := d.providers.Get(station.Type).ListCities(ctx, *station)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

func (d *Delivery) Balance(ctx context.Context, merID, stationID int64) (*entities.Balance, error) {
	station, err := d.ownStation(ctx, merID, stationID)
	if err != nil {
		return nil, err
	}

	balance, err := d.providers.Get(station.Type).GetBalance(ctx, *station)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

func (d *Delivery) ProviderOrderDetail(ctx context.Context, merID, orderID int64) (*entities.ProviderOrderDetail, error) {
	order, err := d.Detail(ctx, merID, orderID)
	if err != nil {
		return nil, err
	}

	detail, err := d.providers.Get(order.StationType).GetOrderDetail(ctx, *order)
	if err != nil {
		return nil, fmt.Errorf("get provider order detail: %w", err)
	}
	return detail, nil
}

func (d *Delivery) ownStation(ctx context.Context, merID, stationID int64) (*entities.DeliveryStation, error) {
	if !isValidID(stationID) {
		return nil, entities.ErrStationNotFound
	}

	station, err := d.stations.GetByID(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("get station: %w", err)
	}
	if !ownedBy(merID, station.MerID) {
		return nil, entities.ErrStationNotFound
	}
	return station, nil
}
