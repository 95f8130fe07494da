//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=station_test
package station

import (
	"context"

	"samecity/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, station entities.DeliveryStationModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryStation, error)
	ListByMerchant(ctx context.Context, merID int64) ([]entities.DeliveryStation, error)
	Update(ctx context.Context, station entities.DeliveryStationModify) (*entities.DeliveryStation, error)
}

type MerchantRepository interface {
	GetConfig(ctx context.Context, merID int64) (*entities.MerchantConfig, error)
	SaveFeeConfig(ctx context.Context, merID int64, enabled bool, cfg entities.FeeConfig) error
	SetCourierClaim(ctx context.Context, merID int64, enabled bool) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
