package fee

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"samecity/internal/entities"
	"samecity/internal/geo"
)

const currencyScale = 2

type Fee struct {
	stations  StationRepository
	merchants MerchantRepository
	geocoder  Geocoder
}

func New(stations StationRepository, merchants MerchantRepository, geocoder Geocoder) *Fee {
	return &Fee{
		stations:  stations,
		merchants: merchants,
		geocoder:  geocoder,
	}
}

// ComputeFee prices delivery of an order from a station. A merchant without
// a fee config pays nothing.
func (f *Fee) ComputeFee(ctx context.Context, req entities.FeeRequest) (decimal.Decimal, error) {
	if !isValidRequest(req.OrderTotal, req.TotalWeight) {
		return decimal.Zero, ErrInvalidRequest
	}

	cfg, err := f.loadFeeConfig(ctx, req.MerID)
	if err != nil {
		return decimal.Zero, err
	}
	if cfg == nil {
		FeeComputationsTotal.WithLabelValues("disabled").Inc()
		return decimal.Zero, nil
	}

	distance := func() (decimal.Decimal, error) {
		station, err := f.loadStation(ctx, req.StationID, req.MerID)
		if err != nil {
			return decimal.Zero, err
		}
		dest, err := f.resolve(ctx, req.Destination)
		if err != nil {
			return decimal.Zero, err
		}
		return geo.Distance(station.Location, dest), nil
	}

	fee, err := Calculate(*cfg, req.OrderTotal, req.TotalWeight, distance)
	if err != nil {
		FeeComputationsTotal.WithLabelValues("rejected").Inc()
		return decimal.Zero, err
	}

	FeeComputationsTotal.WithLabelValues("priced").Inc()
	return fee, nil
}

// Quote is the checkout entry point: it checks the destination against the
// station's delivery scope and prices the order.
func (f *Fee) Quote(ctx context.Context, req entities.FeeRequest) (*entities.FeeQuote, error) {
	if !isValidRequest(req.OrderTotal, req.TotalWeight) {
		return nil, ErrInvalidRequest
	}

	var (
		station *entities.DeliveryStation
		cfg     *entities.FeeConfig
		dest    geo.Point
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		station, err = f.loadStation(gctx, req.StationID, req.MerID)
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = f.loadFeeConfig(gctx, req.MerID)
		return err
	})
	g.Go(func() error {
		var err error
		dest, err = f.resolve(gctx, req.Destination)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !IsEligible(*station, req.Destination.Region, dest) {
		FeeComputationsTotal.WithLabelValues("out_of_range").Inc()
		return nil, ErrOutOfDeliveryRange
	}

	distance := geo.Distance(station.Location, dest)
	quote := &entities.FeeQuote{
		Fee:         decimal.Zero,
		Distance:    distance,
		Destination: dest,
	}
	if cfg == nil {
		FeeComputationsTotal.WithLabelValues("disabled").Inc()
		return quote, nil
	}

	fee, err := Calculate(*cfg, req.OrderTotal, req.TotalWeight, func() (decimal.Decimal, error) {
		return distance, nil
	})
	if err != nil {
		FeeComputationsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	FeeComputationsTotal.WithLabelValues("priced").Inc()
	quote.Fee = fee
	return quote, nil
}

// Calculate applies a fee config. distance is only called when premiums
// are stacked.
func Calculate(
	cfg entities.FeeConfig,
	orderTotal decimal.Decimal,
	totalWeight decimal.Decimal,
	distance func() (decimal.Decimal, error),
) (decimal.Decimal, error) {
	if orderTotal.LessThan(cfg.MinDeliveryAmount) {
		return decimal.Zero, fmt.Errorf("%w: %s < %s", ErrBelowMinimumOrder, orderTotal, cfg.MinDeliveryAmount)
	}

	if cfg.FreeShippingAmount.IsPositive() && orderTotal.GreaterThanOrEqual(cfg.FreeShippingAmount) {
		return decimal.Zero, nil
	}

	fee := cfg.BaseShippingFee
	if !cfg.PremiumEnabled {
		return fee.Round(currencyScale), nil
	}

	km, err := distance()
	if err != nil {
		return decimal.Zero, err
	}

	fee = fee.
		Add(Surcharge(cfg.DistancePremium, km)).
		Add(Surcharge(cfg.WeightPremium, totalWeight))

	return fee.Round(currencyScale), nil
}

// IsEligible runs the check selected by the station's scope type.
func IsEligible(station entities.DeliveryStation, region geo.Region, dest geo.Point) bool {
	switch station.ScopeType {
	case entities.ScopeRegion:
		return geo.IsWithinRegion(station.Regions, region)
	case entities.ScopeFence:
		return geo.IsWithinFence(station.Fences, dest)
	default:
		return geo.IsWithinRadius(station.Location, station.Radius, dest)
	}
}

func (f *Fee) loadFeeConfig(ctx context.Context, merID int64) (*entities.FeeConfig, error) {
	cfg, err := f.merchants.GetConfig(ctx, merID)
	if err != nil {
		if errors.Is(err, entities.ErrMerchantConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load merchant config: %w", err)
	}
	if !cfg.FeeEnabled {
		return nil, nil
	}
	return &cfg.Fee, nil
}

func (f *Fee) loadStation(ctx context.Context, stationID, merID int64) (*entities.DeliveryStation, error) {
	station, err := f.stations.GetByID(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("load station: %w", err)
	}
	if station.MerID != merID {
		return nil, entities.ErrStationNotFound
	}
	return station, nil
}

func (f *Fee) resolve(ctx context.Context, address geo.Address) (geo.Point, error) {
	if address.Point != nil {
		return *address.Point, nil
	}

	point, err := f.geocoder.Resolve(ctx, address)
	if err != nil {
		if errors.Is(err, geo.ErrGeocode) {
			return geo.Point{}, fmt.Errorf("%w: %w", ErrAddressNotFound, err)
		}
		return geo.Point{}, fmt.Errorf("resolve destination: %w", err)
	}
	return point, nil
}
