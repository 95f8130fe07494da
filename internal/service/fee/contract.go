//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fee_test
package fee

import (
	"context"

	"samecity/internal/entities"
	"samecity/internal/geo"
)

type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.DeliveryStation, error)
}

type MerchantRepository interface {
	GetConfig(ctx context.Context, merID int64) (*entities.MerchantConfig, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, address geo.Address) (geo.Point, error)
}
