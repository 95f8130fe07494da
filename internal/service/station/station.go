package station

import (
	"context"
	"errors"
	"fmt"

	"samecity/internal/entities"
	"samecity/internal/service/fee"
)

type Station struct {
	repository Repository
	merchants  MerchantRepository
	txManager  TxManager
}

func New(repository Repository, merchants MerchantRepository, txManager TxManager) *Station {
	return &Station{
		repository: repository,
		merchants:  merchants,
		txManager:  txManager,
	}
}

func (s *Station) CreateStation(ctx context.Context, modify entities.DeliveryStationModify) (int64, error) {
	if modify.MerID == nil ||
		modify.Name == nil ||
		modify.Location == nil ||
		modify.Address == nil ||
		modify.Type == nil ||
		modify.ScopeType == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidID(*modify.MerID) {
		return 0, ErrInvalidMerchantID
	}
	if err := validateFields(modify); err != nil {
		return 0, err
	}
	if err := validateStation(merge(entities.DeliveryStation{}, modify)); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, modify)
	if err != nil {
		return 0, fmt.Errorf("create station: %w", err)
	}
	return id, nil
}

// UpdateStation applies a partial update. merID scopes the update to the
// merchant's own stations.
func (s *Station) UpdateStation(
	ctx context.Context,
	merID int64,
	modify entities.DeliveryStationModify,
) (*entities.DeliveryStation, error) {
	if modify.ID == nil || !isValidID(*modify.ID) {
		return nil, ErrInvalidStationID
	}
	if modify.Name == nil &&
		modify.Phone == nil &&
		modify.Location == nil &&
		modify.Radius == nil &&
		modify.Address == nil &&
		modify.CityCode == nil &&
		modify.CityName == nil &&
		modify.Regions == nil &&
		modify.Fences == nil &&
		modify.BusinessHours == nil &&
		modify.ShopID == nil &&
		modify.Type == nil &&
		modify.ScopeType == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if err := validateFields(modify); err != nil {
		return nil, err
	}

	modify.MerID = nil

	var updated *entities.DeliveryStation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.GetStation(ctx, merID, *modify.ID)
		if err != nil {
			return err
		}
		if err := validateStation(merge(*current, modify)); err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("failed to update station: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Station) GetStation(ctx context.Context, merID, id int64) (*entities.DeliveryStation, error) {
	if !isValidID(id) {
		return nil, ErrInvalidStationID
	}

	station, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}
	if merID != 0 && station.MerID != merID {
		return nil, entities.ErrStationNotFound
	}
	return station, nil
}

func (s *Station) ListStations(ctx context.Context, merID int64) ([]entities.DeliveryStation, error) {
	if !isValidID(merID) {
		return nil, ErrInvalidMerchantID
	}

	stations, err := s.repository.ListByMerchant(ctx, merID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	return stations, nil
}

// MerchantConfig returns the merchant's delivery settings. Merchants that
// never saved any get the zero config: fees disabled, claim disabled.
func (s *Station) MerchantConfig(ctx context.Context, merID int64) (*entities.MerchantConfig, error) {
	if !isValidID(merID) {
		return nil, ErrInvalidMerchantID
	}

	cfg, err := s.merchants.GetConfig(ctx, merID)
	if err != nil {
		if errors.Is(err, entities.ErrMerchantConfigNotFound) {
			return &entities.MerchantConfig{MerID: merID}, nil
		}
		return nil, fmt.Errorf("get merchant config: %w", err)
	}
	return cfg, nil
}

func (s *Station) SaveFeeConfig(ctx context.Context, merID int64, enabled bool, cfg entities.FeeConfig) error {
	if !isValidID(merID) {
		return ErrInvalidMerchantID
	}
	if err := fee.ValidateConfig(cfg); err != nil {
		return err
	}

	if err := s.merchants.SaveFeeConfig(ctx, merID, enabled, cfg); err != nil {
		return fmt.Errorf("save fee config: %w", err)
	}
	return nil
}

func (s *Station) SetCourierClaim(ctx context.Context, merID int64, enabled bool) error {
	if !isValidID(merID) {
		return ErrInvalidMerchantID
	}

	if err := s.merchants.SetCourierClaim(ctx, merID, enabled); err != nil {
		return fmt.Errorf("set courier claim: %w", err)
	}
	return nil
}
